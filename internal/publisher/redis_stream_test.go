package publisher

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	at := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	values, err := Values(StageEvent{
		RunID:  "run-1",
		Stage:  "filter-rb70",
		Status: StatusOutput,
		Output: "data/rb_rushing_2001_2024_rb70.csv",
		Rows:   812,
		Cols:   14,
		At:     at,
	})
	require.NoError(t, err)

	assert.Equal(t, "filter-rb70", values["stage"])
	assert.Equal(t, StatusOutput, values["status"])
	assert.Equal(t, at.Unix(), values["timestamp"])

	var back StageEvent
	require.NoError(t, sonic.UnmarshalString(values["data"].(string), &back))
	assert.Equal(t, "run-1", back.RunID)
	assert.Equal(t, 812, back.Rows)
	assert.True(t, at.Equal(back.At))
}

func TestValues_StampsTime(t *testing.T) {
	values, err := Values(StageEvent{Stage: "all", Status: StatusStarted})
	require.NoError(t, err)
	assert.NotZero(t, values["timestamp"])
}

func TestNewStreamPublisher_DefaultStream(t *testing.T) {
	assert.Equal(t, DefaultStream, NewStreamPublisher(nil, "").Stream())
	assert.Equal(t, "custom", NewStreamPublisher(nil, "custom").Stream())
}
