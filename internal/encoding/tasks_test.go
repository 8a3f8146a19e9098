package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/taskr/internal/model"
)

func TestDecodeTasks_EmptyInputs(t *testing.T) {
	for _, in := range []string{"", "   \n", "null", " null "} {
		tasks, err := DecodeTasks([]byte(in))
		require.NoError(t, err, "input %q", in)
		assert.NotNil(t, tasks, "input %q", in)
		assert.Empty(t, tasks, "input %q", in)
	}

	tasks, err := DecodeTasks(nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDecodeTasks_LegacyRecords(t *testing.T) {
	// Lists written before ids existed carry only the four record fields.
	data := `[{"projectName":"A","taskDescription":"d1","timestamp":100,"duration":5}]`

	tasks, err := DecodeTasks([]byte(data))
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	assert.Equal(t, model.Task{
		ProjectName:     "A",
		TaskDescription: "d1",
		Timestamp:       model.Millis(100),
		Duration:        model.Millis(5),
	}, tasks[0])
}

func TestDecodeTasks_Invalid(t *testing.T) {
	_, err := DecodeTasks([]byte(`{"projectName":"A"}`))
	assert.Error(t, err)

	_, err = DecodeTasks([]byte(`[{`))
	assert.Error(t, err)
}

func TestEncodeTasks(t *testing.T) {
	data, err := EncodeTasks(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	data, err = EncodeTasks([]model.Task{
		{ID: "1", ProjectName: "A", TaskDescription: "d1", Timestamp: model.Millis(100), Duration: model.Millis(5)},
		{ID: "2", ProjectName: "B", Timestamp: model.Millis(200)},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":"1","projectName":"A","taskDescription":"d1","timestamp":100,"duration":5},
		{"id":"2","projectName":"B","taskDescription":"","timestamp":200}
	]`, string(data))
}

func TestEncodeDecode_PreservesOrder(t *testing.T) {
	in := []model.Task{
		{ID: "c", ProjectName: "C", Timestamp: model.Millis(3)},
		{ID: "a", ProjectName: "A", Timestamp: model.Millis(1)},
		{ID: "b", ProjectName: "B", Timestamp: model.Millis(2)},
	}

	data, err := EncodeTasks(in)
	require.NoError(t, err)

	out, err := DecodeTasks(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeTasks_ForeignValues(t *testing.T) {
	data := `[{"id":"x","projectName":"A","taskDescription":"d","timestamp":"3/14/2023, 10:00:00 AM","duration":"2 days","status":"done"},` +
		`{"id":"y","projectName":"B","taskDescription":"","timestamp":100.5,"duration":5}]`

	tasks, err := DecodeTasks([]byte(data))
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, model.Value(`"3/14/2023, 10:00:00 AM"`), tasks[0].Timestamp)
	assert.Equal(t, "3/14/2023, 10:00:00 AM", tasks[0].Timestamp.Text())
	assert.True(t, tasks[0].CreatedAt().IsZero())
	assert.Zero(t, tasks[0].Elapsed())
	assert.Equal(t, `"done"`, string(tasks[0].Extra["status"]))

	ms, ok := tasks[1].Timestamp.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(101), ms)

	out, err := EncodeTasks(tasks)
	require.NoError(t, err)
	assert.Equal(t, data, string(out))
}

func TestDecodeTasks_AbsentFieldsStayAbsent(t *testing.T) {
	data := `[{"id":"x","projectName":"A","taskDescription":""}]`

	tasks, err := DecodeTasks([]byte(data))
	require.NoError(t, err)
	assert.False(t, tasks[0].Timestamp.IsSet())
	assert.Nil(t, tasks[0].Extra)

	out, err := EncodeTasks(tasks)
	require.NoError(t, err)
	assert.Equal(t, data, string(out))
}
