package composer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nexus/internal/domain"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// Mocks and fakes

type MockModerator struct {
	mock.Mock
}

func (m *MockModerator) ModerateContent(ctx context.Context, content string) (Verdict, error) {
	args := m.Called(ctx, content)
	return args.Get(0).(Verdict), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(post *domain.Post) {
	m.Called(post)
}

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []string
}

func (n *recordingNotifier) Notify(message string, severity domain.ToastSeverity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, message)
}

func (n *recordingNotifier) contains(substr string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, msg := range n.toasts {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

type stubUsers struct{}

func (stubUsers) Acting() domain.User {
	return domain.User{
		ID:       "u1",
		Name:     "Alex Rivera",
		Username: "arivera",
		Avatar:   "https://picsum.photos/seed/alex/200",
	}
}

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

// tick offers one tick; reports whether the upload loop consumed it.
func (f *fakeTicker) tick() bool {
	select {
	case f.ch <- time.Time{}:
		return true
	case <-time.After(200 * time.Millisecond):
		return false
	}
}

type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (c *fakeClock) NewTicker(time.Duration) Ticker {
	t := &fakeTicker{ch: make(chan time.Time)}
	c.mu.Lock()
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()
	return t
}

func (c *fakeClock) tickerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

func (c *fakeClock) lastTicker() *fakeTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.tickers) == 0 {
		return nil
	}
	return c.tickers[len(c.tickers)-1]
}

func newTestService(t *testing.T, moderator Moderator) (*Service, *fakeClock, *MockPublisher, *recordingNotifier) {
	t.Helper()
	clock := &fakeClock{}
	publisher := &MockPublisher{}
	notifier := &recordingNotifier{}

	svc := NewService(moderator, publisher, notifier, stubUsers{}, 10*time.Millisecond)
	svc.clock = clock
	svc.step = func() int { return 25 }
	svc.now = func() time.Time { return fixedNow }
	return svc, clock, publisher, notifier
}

func validVideo() SelectMediaRequest {
	return SelectMediaRequest{FileName: "clip.mp4", SizeBytes: 10 << 20, MimeType: "video/mp4"}
}

// Media intake

func TestSelectMediaOversize(t *testing.T) {
	svc, clock, _, _ := newTestService(t, &MockModerator{})
	id := svc.Open()

	_, err := svc.SelectMedia(id, SelectMediaRequest{
		FileName:  "huge.mp4",
		SizeBytes: 150 << 20,
		MimeType:  "video/mp4",
	})

	var oversize *OversizeMediaError
	require.ErrorAs(t, err, &oversize)
	assert.Equal(t, int64(150), oversize.ActualMB)

	st, stErr := svc.State(id)
	require.NoError(t, stErr)
	assert.Nil(t, st.Media)
	assert.Equal(t, UploadNotStarted, st.UploadState)
	assert.Zero(t, clock.tickerCount())
	assert.Zero(t, svc.Previews().ActiveCount())
}

func TestSelectMediaUnsupportedKind(t *testing.T) {
	svc, clock, _, _ := newTestService(t, &MockModerator{})
	id := svc.Open()

	_, err := svc.SelectMedia(id, SelectMediaRequest{
		FileName:  "photo.png",
		SizeBytes: 10 << 20,
		MimeType:  "image/png",
	})

	require.ErrorIs(t, err, ErrUnsupportedMediaKind)
	assert.Zero(t, clock.tickerCount())
	assert.Zero(t, svc.Previews().ActiveCount())
}

// Upload progress

func TestUploadProgressReachesComplete(t *testing.T) {
	svc, clock, _, _ := newTestService(t, &MockModerator{})
	id := svc.Open()

	att, err := svc.SelectMedia(id, validVideo())
	require.NoError(t, err)
	require.NotEmpty(t, att.PreviewURL)
	require.Equal(t, 1, clock.tickerCount())

	ticker := clock.lastTicker()
	last := 0
	for i := 0; i < 3; i++ {
		require.True(t, ticker.tick())
		want := 25 * (i + 1)
		require.Eventually(t, func() bool {
			st, stErr := svc.State(id)
			return stErr == nil && st.UploadPercent == want
		}, time.Second, time.Millisecond)

		st, _ := svc.State(id)
		assert.Equal(t, UploadInProgress, st.UploadState)
		assert.GreaterOrEqual(t, st.UploadPercent, last)
		last = st.UploadPercent
	}

	require.True(t, ticker.tick())
	require.Eventually(t, func() bool {
		st, stErr := svc.State(id)
		return stErr == nil && st.UploadState == UploadComplete
	}, time.Second, time.Millisecond)

	st, _ := svc.State(id)
	assert.Equal(t, 100, st.UploadPercent)
	assert.Eventually(t, func() bool { return ticker.stopped.Load() }, time.Second, time.Millisecond)

	// The loop is gone; a late tick is not consumed and nothing moves.
	assert.False(t, ticker.tick())
	st, _ = svc.State(id)
	assert.Equal(t, 100, st.UploadPercent)
	assert.Equal(t, UploadComplete, st.UploadState)
}

func TestUploadPercentClampedAtHundred(t *testing.T) {
	svc, clock, _, _ := newTestService(t, &MockModerator{})
	svc.step = func() int { return 40 }
	id := svc.Open()

	_, err := svc.SelectMedia(id, validVideo())
	require.NoError(t, err)

	ticker := clock.lastTicker()
	for i := 0; i < 3; i++ {
		require.True(t, ticker.tick())
	}
	require.Eventually(t, func() bool {
		st, stErr := svc.State(id)
		return stErr == nil && st.UploadState == UploadComplete
	}, time.Second, time.Millisecond)

	st, _ := svc.State(id)
	assert.Equal(t, 100, st.UploadPercent)
}

func TestReplaceMediaRestartsUpload(t *testing.T) {
	svc, clock, _, _ := newTestService(t, &MockModerator{})
	id := svc.Open()

	first, err := svc.SelectMedia(id, validVideo())
	require.NoError(t, err)
	firstTicker := clock.lastTicker()
	require.True(t, firstTicker.tick())
	require.Eventually(t, func() bool {
		st, stErr := svc.State(id)
		return stErr == nil && st.UploadPercent == 25
	}, time.Second, time.Millisecond)

	second, err := svc.SelectMedia(id, SelectMediaRequest{
		FileName:  "other.mp4",
		SizeBytes: 20 << 20,
		MimeType:  "video/webm",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.PreviewURL, second.PreviewURL)

	// One live ticker per composer: the first one is torn down.
	assert.Eventually(t, func() bool { return firstTicker.stopped.Load() }, time.Second, time.Millisecond)
	assert.Equal(t, 2, clock.tickerCount())
	assert.Equal(t, 1, svc.Previews().ActiveCount())

	st, _ := svc.State(id)
	assert.Equal(t, UploadInProgress, st.UploadState)
	assert.Zero(t, st.UploadPercent)
}

func TestRemoveMediaCleansUp(t *testing.T) {
	svc, clock, _, _ := newTestService(t, &MockModerator{})
	id := svc.Open()

	_, err := svc.SelectMedia(id, validVideo())
	require.NoError(t, err)
	ticker := clock.lastTicker()

	require.NoError(t, svc.RemoveMedia(id))
	assert.Zero(t, svc.Previews().ActiveCount())
	assert.Eventually(t, func() bool { return ticker.stopped.Load() }, time.Second, time.Millisecond)

	st, _ := svc.State(id)
	assert.Nil(t, st.Media)
	assert.Equal(t, UploadNotStarted, st.UploadState)
	assert.Zero(t, st.UploadPercent)

	// A second removal is a no-op.
	require.NoError(t, svc.RemoveMedia(id))
}

// Submission pipeline

func TestSubmitEmptyDraft(t *testing.T) {
	moderator := &MockModerator{}
	svc, _, publisher, _ := newTestService(t, moderator)
	id := svc.Open()
	require.NoError(t, svc.UpdateBody(id, "   "))

	_, err := svc.Submit(context.Background(), id)

	require.ErrorIs(t, err, ErrEmptyDraft)
	moderator.AssertNotCalled(t, "ModerateContent", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestSubmitBlockedWhileUploading(t *testing.T) {
	moderator := &MockModerator{}
	svc, _, publisher, notifier := newTestService(t, moderator)
	id := svc.Open()
	require.NoError(t, svc.UpdateBody(id, "almost there"))
	_, err := svc.SelectMedia(id, validVideo())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), id)

	require.ErrorIs(t, err, ErrUploadInProgress)
	moderator.AssertNotCalled(t, "ModerateContent", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
	assert.True(t, notifier.contains("still uploading"))

	// Draft untouched and still editable.
	st, stErr := svc.State(id)
	require.NoError(t, stErr)
	assert.Equal(t, "almost there", st.Body)
}

func TestSubmitTextPost(t *testing.T) {
	moderator := &MockModerator{}
	moderator.On("ModerateContent", mock.Anything, "hello world").
		Return(Verdict{Safe: true, Sentiment: "neutral"}, nil)
	svc, _, publisher, notifier := newTestService(t, moderator)
	publisher.On("Publish", mock.AnythingOfType("*domain.Post")).Return()

	id := svc.Open()
	require.NoError(t, svc.UpdateBody(id, "hello world"))

	post, err := svc.Submit(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, post)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, domain.PostText, post.Kind)
	assert.Equal(t, "hello world", post.Content)
	assert.Empty(t, post.Hashtags)
	assert.Empty(t, post.MediaURLs)
	assert.Equal(t, "u1", post.AuthorID)
	assert.Equal(t, "Alex Rivera", post.AuthorName)
	assert.Equal(t, "arivera", post.AuthorUsername)
	assert.Zero(t, post.Likes)
	assert.Zero(t, post.Comments)
	assert.Zero(t, post.Reposts)
	assert.Equal(t, fixedNow, post.CreatedAt)

	publisher.AssertCalled(t, "Publish", post)
	assert.True(t, notifier.contains("published"))

	// Composer is gone after a successful submission.
	_, err = svc.State(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitExtractsHashtags(t *testing.T) {
	moderator := &MockModerator{}
	moderator.On("ModerateContent", mock.Anything, mock.Anything).
		Return(Verdict{Safe: true, Sentiment: "positive"}, nil)
	svc, _, publisher, _ := newTestService(t, moderator)
	publisher.On("Publish", mock.Anything).Return()

	id := svc.Open()
	require.NoError(t, svc.UpdateBody(id, "check this #nexus #AI out"))

	post, err := svc.Submit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"#nexus", "#AI"}, post.Hashtags)
}

func TestSubmitVideoPost(t *testing.T) {
	moderator := &MockModerator{}
	moderator.On("ModerateContent", mock.Anything, mock.Anything).
		Return(Verdict{Safe: true, Sentiment: "neutral"}, nil)
	svc, clock, publisher, _ := newTestService(t, moderator)
	publisher.On("Publish", mock.Anything).Return()

	id := svc.Open()
	require.NoError(t, svc.UpdateBody(id, "new clip!"))
	att, err := svc.SelectMedia(id, validVideo())
	require.NoError(t, err)

	ticker := clock.lastTicker()
	for i := 0; i < 4; i++ {
		require.True(t, ticker.tick())
	}
	require.Eventually(t, func() bool {
		st, stErr := svc.State(id)
		return stErr == nil && st.UploadState == UploadComplete
	}, time.Second, time.Millisecond)

	post, err := svc.Submit(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, domain.PostVideo, post.Kind)
	assert.Equal(t, []string{att.PreviewURL}, post.MediaURLs)
	// The preview handle is released once ownership moves to the post.
	assert.Zero(t, svc.Previews().ActiveCount())
}

func TestSubmitBlockedByModeration(t *testing.T) {
	moderator := &MockModerator{}
	moderator.On("ModerateContent", mock.Anything, mock.Anything).
		Return(Verdict{Safe: false, Reason: "hate speech", Sentiment: "negative"}, nil)
	svc, _, publisher, notifier := newTestService(t, moderator)

	id := svc.Open()
	require.NoError(t, svc.UpdateBody(id, "something nasty"))

	_, err := svc.Submit(context.Background(), id)

	var blocked *BlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, "hate speech", blocked.Reason)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
	assert.True(t, notifier.contains("blocked"))

	// Composer stays open, reason surfaced, draft preserved.
	st, stErr := svc.State(id)
	require.NoError(t, stErr)
	assert.Equal(t, "hate speech", st.LastError)
	assert.Equal(t, "something nasty", st.Body)
	assert.False(t, st.Moderating)
}

func TestSubmitBlockedWithoutReasonUsesFallback(t *testing.T) {
	moderator := &MockModerator{}
	moderator.On("ModerateContent", mock.Anything, mock.Anything).
		Return(Verdict{Safe: false, Sentiment: "negative"}, nil)
	svc, _, _, _ := newTestService(t, moderator)

	id := svc.Open()
	require.NoError(t, svc.UpdateBody(id, "something"))

	_, err := svc.Submit(context.Background(), id)

	var blocked *BlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, genericPolicyViolation, blocked.Reason)
}

func TestSubmitFailsOpenOnModeratorError(t *testing.T) {
	moderator := &MockModerator{}
	moderator.On("ModerateContent", mock.Anything, mock.Anything).
		Return(Verdict{}, errors.New("upstream timeout"))
	svc, _, publisher, _ := newTestService(t, moderator)
	publisher.On("Publish", mock.Anything).Return()

	id := svc.Open()
	require.NoError(t, svc.UpdateBody(id, "perfectly fine post"))

	post, err := svc.Submit(context.Background(), id)

	require.NoError(t, err)
	require.NotNil(t, post)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

type blockingModerator struct {
	release chan struct{}
	calls   atomic.Int32
}

func (b *blockingModerator) ModerateContent(ctx context.Context, content string) (Verdict, error) {
	b.calls.Add(1)
	<-b.release
	return Verdict{Safe: true, Sentiment: "neutral"}, nil
}

func TestSubmitReentrantWhileModerating(t *testing.T) {
	moderator := &blockingModerator{release: make(chan struct{})}
	svc, _, publisher, _ := newTestService(t, moderator)
	publisher.On("Publish", mock.Anything).Return()

	id := svc.Open()
	require.NoError(t, svc.UpdateBody(id, "slow check"))

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), id)
		done <- err
	}()

	require.Eventually(t, func() bool {
		st, err := svc.State(id)
		return err == nil && st.Moderating
	}, time.Second, time.Millisecond)

	_, err := svc.Submit(context.Background(), id)
	require.ErrorIs(t, err, ErrModerationInProgress)

	close(moderator.release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), moderator.calls.Load())
}

func TestCloseDiscardsInFlightVerdict(t *testing.T) {
	moderator := &blockingModerator{release: make(chan struct{})}
	svc, _, publisher, _ := newTestService(t, moderator)

	id := svc.Open()
	require.NoError(t, svc.UpdateBody(id, "closing soon"))

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), id)
		done <- err
	}()

	require.Eventually(t, func() bool {
		st, err := svc.State(id)
		return err == nil && st.Moderating
	}, time.Second, time.Millisecond)

	require.NoError(t, svc.Close(id))
	close(moderator.release)

	require.ErrorIs(t, <-done, ErrClosed)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestCloseReleasesResources(t *testing.T) {
	svc, clock, _, _ := newTestService(t, &MockModerator{})
	id := svc.Open()

	_, err := svc.SelectMedia(id, validVideo())
	require.NoError(t, err)
	ticker := clock.lastTicker()

	require.NoError(t, svc.Close(id))

	assert.Zero(t, svc.Previews().ActiveCount())
	assert.Eventually(t, func() bool { return ticker.stopped.Load() }, time.Second, time.Millisecond)

	_, err = svc.State(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Hashtag extraction

func TestExtractHashtags(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []string
	}{
		{"empty", "", []string{}},
		{"no tags", "hello world", []string{}},
		{"ordered", "check this #nexus #AI out", []string{"#nexus", "#AI"}},
		{"duplicates kept", "#go is great, use #go", []string{"#go", "#go"}},
		{"punctuation stops tags", "#tag1,#tag2! end", []string{"#tag1", "#tag2"}},
		{"bare hash ignored", "just a # sign", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractHashtags(tc.body))
		})
	}
}
