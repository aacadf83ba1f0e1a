package schedule_test

import (
	"testing"

	"github.com/draftbeta/draftbeta/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenCountsDoublesAsTwo(t *testing.T) {
	s := schedule.Schedule{Stages: []schedule.Stage{
		{Team: schedule.A, Selection: schedule.Pick},
		{Team: schedule.B, Selection: schedule.PickPick},
		{Team: schedule.A, Selection: schedule.BanBan},
	}}
	assert.Equal(t, 5, s.Len())
}

func TestValidateRejectsTooLong(t *testing.T) {
	var stages []schedule.Stage
	for i := 0; i < 13; i++ {
		stages = append(stages, schedule.Stage{Team: schedule.A, Selection: schedule.PickPick})
	}
	s := schedule.Schedule{Stages: stages}
	require.Error(t, s.Validate())
}

func TestValidateRejectsEmpty(t *testing.T) {
	require.Error(t, schedule.Schedule{}.Validate())
}


func TestStageAtLocatesDoubleOffset(t *testing.T) {
	s := schedule.Schedule{Stages: []schedule.Stage{
		{Team: schedule.A, Selection: schedule.Pick},
		{Team: schedule.B, Selection: schedule.PickBan},
	}}

	st, off, ok := s.StageAt(0)
	require.True(t, ok)
	assert.Equal(t, schedule.Pick, st.Selection)
	assert.Equal(t, 0, off)

	st, off, ok = s.StageAt(2)
	require.True(t, ok)
	assert.Equal(t, schedule.PickBan, st.Selection)
	assert.Equal(t, 1, off)

	_, _, ok = s.StageAt(3)
	assert.False(t, ok)
}
