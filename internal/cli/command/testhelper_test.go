package command

import (
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// mockServer fakes the GravSweep API for command tests. Handlers are
// matched by the longest registered path prefix, so "/v1/models/" can
// coexist with "/v1/models".
type mockServer struct {
	*httptest.Server
	handlers map[string]http.HandlerFunc
}

func newMockServer() *mockServer {
	m := &mockServer{handlers: make(map[string]http.HandlerFunc)}
	m.Server = httptest.NewServer(http.HandlerFunc(m.dispatch))
	return m
}

func (m *mockServer) handle(prefix string, handler http.HandlerFunc) {
	m.handlers[prefix] = handler
}

func (m *mockServer) dispatch(w http.ResponseWriter, r *http.Request) {
	prefixes := make([]string, 0, len(m.handlers))
	for p := range m.handlers {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })

	for _, p := range prefixes {
		if strings.HasPrefix(r.URL.Path, p) {
			m.handlers[p](w, r)
			return
		}
	}
	http.NotFound(w, r)
}

// jsonResponse writes a response envelope with the given payload.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"code":       "OK",
		"message":    "success",
		"request_id": "req-test",
		"timestamp":  time.Now().UTC(),
		"data":       data,
	})
}

// testContext builds a cli.Context pointed at the mock server, with
// any extra command-line args appended after --server.
func testContext(server *mockServer, args ...string) *cli.Context {
	app := &cli.App{
		Name:  "test",
		Flags: globalFlags(),
	}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		f.Apply(set)
	}

	set.Parse(append([]string{"--server", server.URL}, args...))
	return cli.NewContext(app, set, nil)
}
