package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dainik-app/dainik/pkg/models"
)

func TestDecodeListsPushKeyedObject(t *testing.T) {
	doc := []byte(`{
		"-Nb2": {"title": "Second", "days": {"monday": [{"subject": "Physics", "startTime": "10:00", "endTime": "11:00"}]}},
		"-Na1": {"title": "First", "days": {"monday": [{"subject": "Math", "startTime": "09:00", "endTime": "10:00"}]}}
	}`)

	lists, err := decodeLists(doc)
	require.NoError(t, err)
	require.Len(t, lists, 2)

	// push keys sort chronologically
	assert.Equal(t, "-Na1", lists[0].ID)
	assert.Equal(t, "First", lists[0].Title)
	assert.Equal(t, "-Nb2", lists[1].ID)

	entries := lists[0].Days["monday"]
	require.Len(t, entries, 1)
	assert.Equal(t, "Math", entries[0].Label)
	assert.Equal(t, "09:00", entries[0].StartTime)
	assert.Equal(t, "10:00", entries[0].EndTime)
}

func TestDecodeListsArray(t *testing.T) {
	doc := []byte(`[
		{"title": "Only", "days": {"friday": [{"task": "Essay", "startTime": "19:00", "endTime": "20:00"}]}}
	]`)

	lists, err := decodeLists(doc)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "list-0", lists[0].ID)

	entries := lists[0].Days["friday"]
	require.Len(t, entries, 1)
	// todo documents use "task" instead of "subject"
	assert.Equal(t, "Essay", entries[0].Label)
}

func TestDecodeListsNullAndEmpty(t *testing.T) {
	lists, err := decodeLists([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, lists)

	lists, err = decodeLists(nil)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestDecodeDayEntriesPushKeyedObject(t *testing.T) {
	raw := []byte(`{
		"-Nb": {"subject": "Later", "startTime": "11:00", "endTime": "12:00"},
		"-Na": {"subject": "Earlier", "startTime": "09:00", "endTime": "10:00"}
	}`)

	entries, err := decodeDayEntries(raw)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Earlier", entries[0].Subject)
	assert.Equal(t, "Later", entries[1].Subject)
}

func TestEncodeRoutineListRoundTrip(t *testing.T) {
	list := models.ScheduleList{
		ID:    "imported",
		Title: "Semester plan",
		Days: map[string][]models.ScheduleEntry{
			"monday": {{Label: "Math", StartTime: "09:00", EndTime: "10:00"}},
		},
	}

	doc, err := EncodeRoutineList(list)
	require.NoError(t, err)

	// a single-document store read is just the encoded form in an array
	lists, err := decodeLists([]byte("[" + string(doc) + "]"))
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Semester plan", lists[0].Title)
	assert.Equal(t, "Math", lists[0].Days["monday"][0].Label)
}

func TestDecodeGoalsShapes(t *testing.T) {
	goals, err := decodeGoals([]byte(`["read", "run"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"read", "run"}, goals)

	goals, err = decodeGoals([]byte(`{"items": ["read", "run"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"read", "run"}, goals)

	goals, err = decodeGoals([]byte(`{"-Na": {"text": "read"}, "-Nb": "run"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"read", "run"}, goals)

	goals, err = decodeGoals([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, goals)
}
