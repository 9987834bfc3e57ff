package service

import (
	"strings"
	"testing"

	"mta/attribution"
	"mta/dataset"
	M "mta/model"
	"mta/pathgraph"
	"mta/services/disk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, cacheSize int) *Service {
	service, err := New(Options{
		Attribution: attribution.DefaultConfig(),
		CacheSize:   cacheSize,
		FileManager: disk.New(t.TempDir()),
	})
	require.Nil(t, err)
	return service
}

func TestAttribute(t *testing.T) {
	service := newService(t, 10)
	journeys := []M.Journey{M.NewJourney("", true, "Facebook", "Google", "Direct")}

	result, err := service.Attribute(journeys, M.LastClick)
	require.Nil(t, err)
	assert.Equal(t, []M.Channel{"Direct"}, result.Channels())

	cached, err := service.Attribute(journeys, M.LastClick)
	require.Nil(t, err)
	assert.Same(t, result, cached)

	linear, err := service.Attribute(journeys, M.Linear)
	require.Nil(t, err)
	assert.NotSame(t, result, linear)
	assert.InDelta(t, 1.0/3.0, linear.Credit("Google"), 1e-9)
}

func TestAttributeCachesNormalizedJourneys(t *testing.T) {
	service := newService(t, 10)
	newJourneys := func() []M.Journey {
		return dataset.NormalizeJourneys([]M.Journey{
			{Converted: true, Touchpoints: []M.Touchpoint{{Channel: "Facebook"}, {Channel: "Email"}}},
			{Converted: true, Touchpoints: []M.Touchpoint{{Channel: ""}}},
		})
	}

	result, err := service.Attribute(newJourneys(), M.Linear)
	require.Nil(t, err)
	cached, err := service.Attribute(newJourneys(), M.Linear)
	require.Nil(t, err)
	assert.Same(t, result, cached)
	assert.Equal(t, 1, service.CachedEntries())

	assert.Same(t, service.PathGraph(newJourneys(), false), service.PathGraph(newJourneys(), false))
	assert.Equal(t, 2, service.CachedEntries())
}

func TestAttributeWithoutCache(t *testing.T) {
	service := newService(t, 0)
	journeys := []M.Journey{M.NewJourney("", true, "A")}

	first, err := service.Attribute(journeys, M.Linear)
	require.Nil(t, err)
	second, err := service.Attribute(journeys, M.Linear)
	require.Nil(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Entries(), second.Entries())
	assert.Equal(t, 0, service.CachedEntries())
}

func TestAttributeInvalidModel(t *testing.T) {
	service := newService(t, 10)
	result, err := service.Attribute(nil, M.AttributionModel(42))
	assert.Nil(t, result)
	assert.True(t, M.IsInvalidModelError(err))
}

func TestAttributeSkipsMalformed(t *testing.T) {
	service := newService(t, 10)
	journeys := []M.Journey{
		M.NewJourney("ok", true, "A"),
		{ID: "bad", Converted: true, Touchpoints: []M.Touchpoint{{Channel: "", Position: 0}}},
	}
	result, err := service.Attribute(journeys, M.FirstClick)
	require.Nil(t, err)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "bad", result.Skipped[0].JourneyID)
	assert.Equal(t, 1.0, result.Credit("A"))
}

func TestCompare(t *testing.T) {
	service := newService(t, 10)
	comparison, err := service.Compare(dataset.SampleJourneys())
	require.Nil(t, err)
	assert.Len(t, comparison.Models, 5)

	_, err = service.Compare(dataset.SampleJourneys(), M.AttributionModel(0))
	assert.True(t, M.IsInvalidModelError(err))
}

func TestPathGraph(t *testing.T) {
	service := newService(t, 10)
	journeys := []M.Journey{
		M.NewJourney("", true, "A", "B", "A"),
		M.NewJourney("", false, "B"),
	}

	graph := service.PathGraph(journeys, false)
	assert.False(t, graph.IsAcyclic())
	assert.Same(t, graph, service.PathGraph(journeys, false))

	dag := service.PathGraph(journeys, true)
	assert.True(t, dag.IsAcyclic())
	exit, found := dag.Node(pathgraph.NodeExit)
	assert.True(t, found)
	assert.Equal(t, 1.0, exit.Value)
}

func TestTopPaths(t *testing.T) {
	service := newService(t, 0)
	paths := service.TopPaths(dataset.SampleJourneys(), 1)
	require.Len(t, paths, 1)
	assert.Equal(t, "Google > Facebook > Email", paths[0].String())
}

func TestLoadJourneysAndWriteReport(t *testing.T) {
	service := newService(t, 0)
	fm := service.fileManager
	dir, fileName := fm.GetJourneysFilePathAndName("journeys.jsonl")
	require.Nil(t, fm.Create(dir, fileName, strings.NewReader(
		`{"id":"a","converted":true,"touchpoints":[{"channel":"A"},{"channel":"B"}]}`+"\n")))

	journeys, err := service.LoadJourneys("", "journeys.jsonl")
	require.Nil(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, 1, journeys[0].Touchpoints[1].Position)

	_, _, err = service.WriteReport("paths", service.TopPaths(journeys, 0))
	assert.Nil(t, err)

	noStore, err := New(Options{})
	require.Nil(t, err)
	_, err = noStore.LoadJourneys("", "journeys.jsonl")
	assert.Equal(t, ErrNoFileManager, err)
}

func TestNewFileManager(t *testing.T) {
	fm, err := NewFileManager("disk", t.TempDir(), "", "")
	require.Nil(t, err)
	assert.NotEmpty(t, fm.GetJourneysDir())

	fm, err = NewFileManager("s3", "", "journeys", "us-east-1")
	require.Nil(t, err)
	assert.Equal(t, "journeys", fm.GetBucketName())

	_, err = NewFileManager("ftp", "", "", "")
	assert.NotNil(t, err)
}
