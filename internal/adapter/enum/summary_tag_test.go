package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSummaryTagCaseInsensitive(t *testing.T) {
	tag, ok := ParseSummaryTag("netliquidation")
	require.True(t, ok)
	assert.Equal(t, TagNetLiquidation, tag)

	tag, ok = ParseSummaryTag("GrossPositionValue")
	require.True(t, ok)
	assert.Equal(t, TagGrossPositionValue, tag)

	_, ok = ParseSummaryTag("NetWorth")
	assert.False(t, ok)
}

func TestSummaryTagNamesAreComplete(t *testing.T) {
	for tag := _summary_tag_beg + 1; tag < _summary_tag_end; tag++ {
		require.True(t, tag.IsAvailable())
		assert.NotEqual(t, "UNKNOWN", tag.String())
	}
}

func TestJoinSummaryTags(t *testing.T) {
	joined := JoinSummaryTags([]SummaryTag{TagNetLiquidation, TagGrossPositionValue, TagMaintMarginReq})
	assert.Equal(t, "NetLiquidation,GrossPositionValue,MaintMarginReq", joined)

	assert.Equal(t, "", JoinSummaryTags(nil))
}
