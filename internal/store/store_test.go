package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	s, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIP(t *testing.T) {
	s := openTestStore(t)
	a := s.HashIP("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, a, s.HashIP("203.0.113.8"))
	assert.NotContains(t, a, "203")
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.RecordVisit(ctx, "198.51.100.1", "curl", "/"))
	require.NoError(t, s.RecordVisit(ctx, "198.51.100.1", "curl", "/"))
	require.NoError(t, s.RecordVisit(ctx, "198.51.100.2", "firefox", "/"))

	require.NoError(t, s.RecordClick(ctx, "github", "https://github.com/elifdikmn"))
	require.NoError(t, s.RecordClick(ctx, "github", "https://github.com/elifdikmn"))
	require.NoError(t, s.RecordClick(ctx, "mail", "mailto:someone@example.com"))

	require.NoError(t, s.RecordPanelOpen(ctx, "about"))
	require.NoError(t, s.RecordPanelOpen(ctx, "projects"))
	require.NoError(t, s.RecordPanelOpen(ctx, "about"))

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, st.TotalVisitors)
	assert.EqualValues(t, 2, st.UniqueVisitors)
	assert.EqualValues(t, 3, st.VisitorsToday)
	assert.EqualValues(t, 3, st.VisitorsThisWeek)
	assert.EqualValues(t, 3, st.TotalClicks)

	require.Len(t, st.Links, 2)
	assert.Equal(t, "github", st.Links[0].Name)
	assert.EqualValues(t, 2, st.Links[0].Clicks)
	require.NotNil(t, st.Links[0].LastClicked)

	require.Len(t, st.Panels, 2)
	assert.Equal(t, PanelStat{View: "about", Opens: 2}, st.Panels[0])

	assert.Len(t, st.RecentVisitors, 3)
	assert.Equal(t, "firefox", st.RecentVisitors[0].UserAgent)
}

func TestStats_Empty(t *testing.T) {
	s := openTestStore(t)
	st, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.TotalVisitors)
	assert.Zero(t, st.TotalClicks)
	assert.Empty(t, st.Links)
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now.Add(-400 * 24 * time.Hour) }
	require.NoError(t, s.RecordVisit(ctx, "192.0.2.1", "old", "/"))
	s.now = func() time.Time { return now }
	require.NoError(t, s.RecordVisit(ctx, "192.0.2.1", "new", "/"))

	n, err := s.Cleanup(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	visitors, err := s.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "new", visitors[0].UserAgent)
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken()
	require.NoError(t, err)
	b, err := RandomToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
