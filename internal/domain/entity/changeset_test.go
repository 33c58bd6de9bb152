package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobly/internal/domain/entity"
)

func TestChangeSet_UnmarshalKeepsKeyOrder(t *testing.T) {
	var changes entity.ChangeSet
	require.NoError(t, json.Unmarshal([]byte(`{"salary": 95000, "title": "Dev", "equity": null}`), &changes))

	assert.Equal(t, []string{"salary", "title", "equity"}, changes.Keys())

	salary, ok := changes.Get("salary")
	require.True(t, ok)
	assert.Equal(t, json.Number("95000"), salary)

	equity, ok := changes.Get("equity")
	require.True(t, ok)
	assert.Nil(t, equity)
}

func TestChangeSet_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	var changes entity.ChangeSet
	require.NoError(t, json.Unmarshal([]byte(`{"title": "a", "salary": 1, "title": "b"}`), &changes))

	assert.Equal(t, []string{"title", "salary"}, changes.Keys())
	title, _ := changes.Get("title")
	assert.Equal(t, "b", title)
}

func TestChangeSet_RejectsNonObjects(t *testing.T) {
	for _, body := range []string{`null`, `[]`, `"title"`, `42`} {
		var changes entity.ChangeSet
		err := json.Unmarshal([]byte(body), &changes)
		assert.Error(t, err, body)
	}
}

func TestChangeSet_EmptyObject(t *testing.T) {
	var changes entity.ChangeSet
	require.NoError(t, json.Unmarshal([]byte(`{}`), &changes))
	assert.Equal(t, 0, changes.Len())
}

func TestChangeSet_MarshalRoundTripsOrder(t *testing.T) {
	changes := entity.NewChangeSet()
	changes.Set("title", "Dev")
	changes.Set("salary", int64(10))

	data, err := json.Marshal(changes)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Dev","salary":10}`, string(data))
	assert.Equal(t, `{"title":"Dev","salary":10}`, string(data))
}

func TestChangeSet_KeysIsACopy(t *testing.T) {
	changes := entity.NewChangeSet()
	changes.Set("title", "Dev")

	keys := changes.Keys()
	keys[0] = "salary"

	assert.Equal(t, []string{"title"}, changes.Keys())
}
