package store

import (
	"context"
	"fmt"
	"time"
)

// Visitor is one recorded page view.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// LinkStat is the click count of one outbound link.
type LinkStat struct {
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	Clicks      int64      `json:"clicks"`
	LastClicked *time.Time `json:"last_clicked,omitempty"`
}

// PanelStat counts how often a panel was shown.
type PanelStat struct {
	View  string `json:"view"`
	Opens int64  `json:"opens"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64       `json:"total_visitors"`
	UniqueVisitors   int64       `json:"unique_visitors"`
	VisitorsToday    int64       `json:"visitors_today"`
	VisitorsThisWeek int64       `json:"visitors_this_week"`
	TotalClicks      int64       `json:"total_clicks"`
	Links            []LinkStat  `json:"links"`
	Panels           []PanelStat `json:"panels"`
	RecentVisitors   []Visitor   `json:"recent_visitors"`
}

// RecordVisit stores a page view with the address already hashed.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().UTC())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordClick increments the named link's counter.
func (s *Store) RecordClick(ctx context.Context, name, url string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO link_clicks (name, url, clicks, last_clicked) VALUES (?, ?, 1, ?)
		ON CONFLICT(name) DO UPDATE SET clicks = clicks + 1, url = excluded.url, last_clicked = excluded.last_clicked`,
		name, url, s.now().UTC())
	if err != nil {
		return fmt.Errorf("record click %s: %w", name, err)
	}
	return nil
}

// RecordPanelOpen increments the counter for a panel.
func (s *Store) RecordPanelOpen(ctx context.Context, view string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO panel_opens (view, opens) VALUES (?, 1)
		ON CONFLICT(view) DO UPDATE SET opens = opens + 1`, view)
	if err != nil {
		return fmt.Errorf("record panel %s: %w", view, err)
	}
	return nil
}

// Cleanup deletes visitor rows older than Retention and returns how many
// were removed.
func (s *Store) Cleanup(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, s.now().UTC().Add(-Retention))
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		s.logger.Infof("privacy cleanup: removed %d visitor records older than 12 months", n)
	}
	return n, nil
}

// RecentVisitors returns up to limit visits, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visitors: %w", err)
	}
	defer rows.Close()

	var out []Visitor
	for rows.Next() {
		var v Visitor
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Stats gathers the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{}
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&st.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&st.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&st.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{dayStart}},
		{&st.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
		{&st.TotalClicks, `SELECT COALESCE(SUM(clicks), 0) FROM link_clicks`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	links, err := s.linkStats(ctx)
	if err != nil {
		return nil, err
	}
	st.Links = links

	panels, err := s.panelStats(ctx)
	if err != nil {
		return nil, err
	}
	st.Panels = panels

	recent, err := s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	st.RecentVisitors = recent
	return st, nil
}

func (s *Store) linkStats(ctx context.Context) ([]LinkStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, url, clicks, last_clicked FROM link_clicks ORDER BY clicks DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var out []LinkStat
	for rows.Next() {
		var (
			l    LinkStat
			last *time.Time
		)
		if err := rows.Scan(&l.Name, &l.URL, &l.Clicks, &last); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		l.LastClicked = last
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) panelStats(ctx context.Context) ([]PanelStat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT view, opens FROM panel_opens ORDER BY opens DESC, view`)
	if err != nil {
		return nil, fmt.Errorf("query panels: %w", err)
	}
	defer rows.Close()

	var out []PanelStat
	for rows.Next() {
		var p PanelStat
		if err := rows.Scan(&p.View, &p.Opens); err != nil {
			return nil, fmt.Errorf("scan panel: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
