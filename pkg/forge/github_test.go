//go:build unit

package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/issue-manager/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestGitHub points a GitHub forge at a test server. The enterprise URL
// rewrite puts every REST route under /api/v3/.
func newTestGitHub(t *testing.T, handler http.Handler, log logger.Logger) *GitHub {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gh, err := NewGitHub(NewGitHubParams{
		Repository: Repository{Owner: "acme", Name: "rotations"},
		Logger:     log,
		APIBaseURL: srv.URL,
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)

	return gh
}

func TestGitHub_PreviousIssue(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)

		query := r.URL.Query()
		assert.Equal(t, "rotation,standup", query.Get("labels"))
		assert.Equal(t, "open", query.Get("state"))
		assert.Equal(t, "created", query.Get("sort"))
		assert.Equal(t, "desc", query.Get("direction"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"number": 11, "id": 1100, "node_id": "PR11", "title": "Some PR", "state": "open",
			 "pull_request": {"url": "https://api.github.com/repos/acme/rotations/pulls/11"}},
			{"number": 10, "id": 1000, "node_id": "N10", "title": "Standup 41", "state": "open",
			 "html_url": "https://github.com/acme/rotations/issues/10",
			 "assignees": [{"login": "alice"}]}
		]`)
	})

	gh := newTestGitHub(t, mux, logger.NewNoopLogger())

	previous, err := gh.PreviousIssue(context.Background(), []string{"rotation", "standup"})
	require.NoError(t, err)
	require.True(t, previous.Exists())
	assert.Equal(t, 10, previous.Number)
	assert.Equal(t, int64(1000), previous.ID)
	assert.Equal(t, "N10", previous.NodeID)
	assert.Equal(t, []string{"alice"}, previous.Assignees)
}

func TestGitHub_PreviousIssue_NoneFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Warnf(gomock.Any(), gomock.Any())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/issues", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	gh := newTestGitHub(t, mux, log)

	previous, err := gh.PreviousIssue(context.Background(), []string{"rotation"})
	require.NoError(t, err)
	assert.False(t, previous.Exists())
}

func TestGitHub_PreviousIssue_OnlyPullRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Warnf(gomock.Any(), gomock.Any())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/issues", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"number": 11, "id": 1100, "node_id": "PR11", "title": "Some PR", "state": "open",
			 "pull_request": {"url": "https://api.github.com/repos/acme/rotations/pulls/11"}}
		]`)
	})

	gh := newTestGitHub(t, mux, log)

	previous, err := gh.PreviousIssue(context.Background(), []string{"rotation"})
	require.NoError(t, err)
	assert.False(t, previous.Exists())
}

func TestGitHub_CreateIssue(t *testing.T) {
	var payload map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"number": 20, "id": 2000, "node_id": "N20", "title": "Standup 42", "state": "open",
			"html_url": "https://github.com/acme/rotations/issues/20",
			"assignees": [{"login": "bob"}]}`)
	})

	gh := newTestGitHub(t, mux, logger.NewNoopLogger())

	created, err := gh.CreateIssue(context.Background(), CreateIssueRequest{
		Title:     "Standup 42",
		Body:      "Agenda for this week.",
		Labels:    []string{"rotation", "standup"},
		Assignees: []string{"bob"},
	})
	require.NoError(t, err)
	assert.Equal(t, 20, created.Number)
	assert.Equal(t, int64(2000), created.ID)
	assert.Equal(t, "N20", created.NodeID)
	assert.Equal(t, "https://github.com/acme/rotations/issues/20", created.URL)
	assert.Equal(t, []string{"bob"}, created.Assignees)

	assert.Equal(t, "Standup 42", payload["title"])
	assert.Equal(t, "Agenda for this week.", payload["body"])
	assert.Equal(t, []interface{}{"rotation", "standup"}, payload["labels"])
	assert.Equal(t, []interface{}{"bob"}, payload["assignees"])
}

func TestGitHub_CreateIssue_OmitsEmptyFields(t *testing.T) {
	var payload map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"number": 21, "id": 2100, "node_id": "N21", "title": "Standup 43", "state": "open"}`)
	})

	gh := newTestGitHub(t, mux, logger.NewNoopLogger())

	_, err := gh.CreateIssue(context.Background(), CreateIssueRequest{Title: "Standup 43"})
	require.NoError(t, err)

	assert.Equal(t, "Standup 43", payload["title"])
	assert.NotContains(t, payload, "body")
	assert.NotContains(t, payload, "labels")
	assert.NotContains(t, payload, "assignees")
}

func TestGitHub_CloseIssue(t *testing.T) {
	var payload map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/issues/10", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"number": 10, "state": "closed"}`)
	})

	gh := newTestGitHub(t, mux, logger.NewNoopLogger())

	require.NoError(t, gh.CloseIssue(context.Background(), 10))
	assert.Equal(t, "closed", payload["state"])
}

func TestGitHub_CreateComment(t *testing.T) {
	var payload map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/issues/20/comments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 1}`)
	})

	gh := newTestGitHub(t, mux, logger.NewNoopLogger())

	require.NoError(t, gh.CreateComment(context.Background(), 20, "Previous in series: #10"))
	assert.Equal(t, "Previous in series: #10", payload["body"])
}

func TestGitHub_AddToMilestone(t *testing.T) {
	var payload map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/issues/20", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"number": 20, "milestone": {"number": 7}}`)
	})

	gh := newTestGitHub(t, mux, logger.NewNoopLogger())

	require.NoError(t, gh.AddToMilestone(context.Background(), 20, 7))
	assert.Equal(t, float64(7), payload["milestone"])
}

func TestGitHub_AddToMilestone_EmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/issues/20", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	})

	gh := newTestGitHub(t, mux, log)

	// An update returning no milestone warns but does not fail the run.
	require.NoError(t, gh.AddToMilestone(context.Background(), 20, 7))
}

func TestGitHub_AddToProjectColumn(t *testing.T) {
	tests := []struct {
		name         string
		projectType  string
		projectsPath string
	}{
		{
			name:         "repository scope",
			projectType:  ProjectTypeRepository,
			projectsPath: "/api/v3/repos/acme/rotations/projects",
		},
		{
			name:         "organization scope",
			projectType:  ProjectTypeOrganization,
			projectsPath: "/api/v3/orgs/acme/projects",
		},
		{
			name:         "user scope",
			projectType:  ProjectTypeUser,
			projectsPath: "/api/v3/users/acme/projects",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cardPayload map[string]interface{}

			mux := http.NewServeMux()
			mux.HandleFunc(tt.projectsPath, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `[{"id": 111, "number": 5, "name": "Board"}]`)
			})
			mux.HandleFunc("/api/v3/projects/111/columns", func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `[{"id": 221, "name": "In progress"}, {"id": 222, "name": "To do"}]`)
			})
			mux.HandleFunc("/api/v3/projects/columns/222/cards", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&cardPayload))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				fmt.Fprint(w, `{"id": 333}`)
			})

			gh := newTestGitHub(t, mux, logger.NewNoopLogger())

			err := gh.AddToProjectColumn(context.Background(), ProjectCardRequest{
				IssueID:     2000,
				Project:     5,
				ProjectType: tt.projectType,
				Column:      "To do",
			})
			require.NoError(t, err)
			assert.Equal(t, float64(2000), cardPayload["content_id"])
			assert.Equal(t, "Issue", cardPayload["content_type"])
		})
	}
}

func TestGitHub_AddToProjectColumn_ProjectMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Warnf(gomock.Any(), gomock.Any())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/projects", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	gh := newTestGitHub(t, mux, log)

	err := gh.AddToProjectColumn(context.Background(), ProjectCardRequest{
		IssueID:     2000,
		Project:     5,
		ProjectType: ProjectTypeRepository,
		Column:      "To do",
	})
	require.NoError(t, err)
}

func TestGitHub_AddToProjectColumn_ColumnMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Warnf(gomock.Any(), gomock.Any())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/projects", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id": 111, "number": 5, "name": "Board"}]`)
	})
	mux.HandleFunc("/api/v3/projects/111/columns", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id": 221, "name": "In progress"}]`)
	})

	gh := newTestGitHub(t, mux, log)

	err := gh.AddToProjectColumn(context.Background(), ProjectCardRequest{
		IssueID:     2000,
		Project:     5,
		ProjectType: ProjectTypeRepository,
		Column:      "To do",
	})
	require.NoError(t, err)
}

func TestGitHub_AddToProjectColumn_PaginatedProjects(t *testing.T) {
	var cardCreated bool

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/rotations/projects", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "" {
			w.Header().Set("Link", fmt.Sprintf(
				`<http://%s/api/v3/repos/acme/rotations/projects?page=2>; rel="next"`, r.Host))
			fmt.Fprint(w, `[{"id": 110, "number": 4, "name": "Other"}]`)
			return
		}
		fmt.Fprint(w, `[{"id": 111, "number": 5, "name": "Board"}]`)
	})
	mux.HandleFunc("/api/v3/projects/111/columns", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id": 222, "name": "To do"}]`)
	})
	mux.HandleFunc("/api/v3/projects/columns/222/cards", func(w http.ResponseWriter, _ *http.Request) {
		cardCreated = true
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 333}`)
	})

	gh := newTestGitHub(t, mux, logger.NewNoopLogger())

	err := gh.AddToProjectColumn(context.Background(), ProjectCardRequest{
		IssueID:     2000,
		Project:     5,
		ProjectType: ProjectTypeRepository,
		Column:      "To do",
	})
	require.NoError(t, err)
	assert.True(t, cardCreated)
}

func TestGitHub_handleGitHubError(t *testing.T) {
	newResponse := func(status int, header http.Header) *github.Response {
		if header == nil {
			header = http.Header{}
		}
		return &github.Response{Response: &http.Response{StatusCode: status, Header: header}}
	}

	gh := &GitHub{logger: logger.NewNoopLogger()}
	apiErr := fmt.Errorf("boom")

	tests := []struct {
		name     string
		resp     *github.Response
		expected error
	}{
		{
			name:     "not found",
			resp:     newResponse(http.StatusNotFound, nil),
			expected: ErrNotFound,
		},
		{
			name:     "unauthorized",
			resp:     newResponse(http.StatusUnauthorized, nil),
			expected: ErrUnauthorized,
		},
		{
			name: "rate limited",
			resp: newResponse(http.StatusForbidden, http.Header{
				"X-Ratelimit-Remaining": []string{"0"},
			}),
			expected: ErrRateLimited,
		},
		{
			name:     "forbidden without rate limit header",
			resp:     newResponse(http.StatusForbidden, nil),
			expected: ErrUnauthorized,
		},
		{
			name:     "no response",
			resp:     nil,
			expected: apiErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gh.handleGitHubError(apiErr, tt.resp, "failed to frob")
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestBuildIssueRequest(t *testing.T) {
	full := buildIssueRequest(CreateIssueRequest{
		Title:     "Standup 42",
		Body:      "Agenda",
		Labels:    []string{"rotation"},
		Assignees: []string{"bob"},
	})
	require.NotNil(t, full.Title)
	assert.Equal(t, "Standup 42", *full.Title)
	require.NotNil(t, full.Body)
	assert.Equal(t, "Agenda", *full.Body)
	require.NotNil(t, full.Labels)
	assert.Equal(t, []string{"rotation"}, *full.Labels)
	require.NotNil(t, full.Assignees)
	assert.Equal(t, []string{"bob"}, *full.Assignees)

	bare := buildIssueRequest(CreateIssueRequest{Title: "Standup 43"})
	require.NotNil(t, bare.Title)
	assert.Nil(t, bare.Body)
	assert.Nil(t, bare.Labels)
	assert.Nil(t, bare.Assignees)
}
