package notification

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/domain"
)

func TestNotifyKeepsFIFOOrder(t *testing.T) {
	svc := NewService(nil, 10)

	svc.Notify("first", domain.ToastInfo)
	svc.Notify("second", domain.ToastSuccess)
	svc.Notify("third", domain.ToastWarning)

	recent := svc.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "first", recent[0].Message)
	assert.Equal(t, "second", recent[1].Message)
	assert.Equal(t, "third", recent[2].Message)
	assert.Equal(t, domain.ToastSuccess, recent[1].Severity)
	assert.NotEmpty(t, recent[0].ID)
}

func TestNotifyTrimsToLimit(t *testing.T) {
	svc := NewService(nil, 3)

	for i := 1; i <= 5; i++ {
		svc.Notify(fmt.Sprintf("toast %d", i), domain.ToastInfo)
	}

	recent := svc.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "toast 3", recent[0].Message)
	assert.Equal(t, "toast 5", recent[2].Message)
}

func TestNotifyWithoutHub(t *testing.T) {
	svc := NewService(nil, 0)

	// No hub wired; must not panic and must still buffer.
	svc.Notify("standalone", domain.ToastInfo)

	assert.Len(t, svc.Recent(), 1)
}

func TestRecentReturnsCopy(t *testing.T) {
	svc := NewService(nil, 10)
	svc.Notify("original", domain.ToastInfo)

	recent := svc.Recent()
	recent[0].Message = "mutated"

	assert.Equal(t, "original", svc.Recent()[0].Message)
}
