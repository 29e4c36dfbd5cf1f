package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "Elif Dikmen", s.Name)
	assert.Equal(t, "HEY, I'M ELIF DIKMEN", s.Headline)
	assert.Len(t, s.About.Paragraphs, 3)
	assert.Equal(t, "COMING SOON", s.Projects.Heading)

	mail := s.Link("mail")
	require.NotNil(t, mail)
	assert.Equal(t, "mailto:eelifddikmen@gmail.com", mail.URL)
	assert.False(t, mail.External())

	gh := s.Link("github")
	require.NotNil(t, gh)
	assert.Nil(t, s.Link("twitter"))
	assert.True(t, gh.External())

	var labels []string
	for _, l := range s.ContactLinks() {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"Mail", "LinkedIn", "GitHub"}, labels)
}

func TestParse_TOML(t *testing.T) {
	data := []byte(`
name = "Ada"
headline = "HELLO"

[[links]]
name = "github"
label = "GitHub"
url = "https://github.com/ada"
`)
	s, err := Parse(data, ".toml")
	require.NoError(t, err)
	assert.Equal(t, "Ada", s.Name)
	require.Len(t, s.Links, 1)
	assert.Equal(t, "https://github.com/ada", s.Links[0].URL)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("name: Ada\n"), ".yaml")
	assert.ErrorIs(t, err, ErrInvalid)

	dup := []byte(`
name: Ada
headline: HI
links:
  - {name: a, url: /x}
  - {name: a, url: /y}
`)
	_, err = Parse(dup, ".yml")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("{}"), ".json")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Elif Dikmen", s.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStore(t *testing.T) {
	st := NewStore(Default())
	assert.Equal(t, "Elif Dikmen", st.Get().Name)
	st.Set(&Site{Name: "Ada", Headline: "HI"})
	assert.Equal(t, "Ada", st.Get().Name)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Ada\nheadline: HI\n"), 0o644))

	initial, err := Load(path)
	require.NoError(t, err)
	store := NewStore(initial)

	reloaded := make(chan *Site, 1)
	w, err := NewWatcher(path, store, func(s *Site) {
		select {
		case reloaded <- s:
		default:
		}
	})
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("name: Grace\nheadline: HELLO\n"), 0o644))

	select {
	case s := <-reloaded:
		assert.Equal(t, "Grace", s.Name)
		assert.Equal(t, "Grace", store.Get().Name)
	case <-time.After(5 * time.Second):
		t.Fatal("content was not reloaded")
	}
}

func TestWatcher_KeepsPreviousOnBadContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Ada\nheadline: HI\n"), 0o644))

	store := NewStore(Default())
	w, err := NewWatcher(path, store, nil)
	require.NoError(t, err)
	defer w.watcher.Close()

	require.NoError(t, os.WriteFile(path, []byte("name: \"\"\n"), 0o644))
	w.reload()
	assert.Equal(t, "Elif Dikmen", store.Get().Name)
}
