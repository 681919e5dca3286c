package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/starford/osirris/internal/apperr"
	"github.com/starford/osirris/internal/content"
)

const (
	// maxErrorBodySize limits the size of error response bodies.
	maxErrorBodySize = 4096
	// pageSize is the number of documents requested per list query.
	pageSize = 500
)

const documentQuery = `query($collection: String!, $relativePath: String!) {
	document(collection: $collection, relativePath: $relativePath) {
		... on Document { _sys { filename basename } _values }
	}
}`

const collectionQuery = `query($collection: String!, $first: Float) {
	collection(collection: $collection) {
		documents(first: $first) {
			edges { node { ... on Document { _sys { filename basename } _values } } }
		}
	}
}`

// Remote queries a headless CMS over its GraphQL endpoint.
type Remote struct {
	endpoint   string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter // nil means unlimited
}

// RemoteOption configures a Remote.
type RemoteOption func(*Remote)

// WithTimeout bounds each CMS request.
func WithTimeout(d time.Duration) RemoteOption {
	return func(r *Remote) {
		if d > 0 {
			r.httpClient.Timeout = d
		}
	}
}

// WithRateLimit caps CMS queries at perSecond with bursts of up to burst.
// A non-positive rate leaves queries unthrottled.
func WithRateLimit(perSecond float64, burst int) RemoteOption {
	return func(r *Remote) {
		if perSecond <= 0 {
			r.limiter = nil
			return
		}
		r.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// NewRemote creates a CMS source. token, if set, is sent as X-API-KEY.
func NewRemote(endpoint, token string, opts ...RemoteOption) *Remote {
	r := &Remote{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns "remote".
func (r *Remote) Name() string { return NameRemote }

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type documentNode struct {
	Sys struct {
		Filename string `json:"filename"`
		Basename string `json:"basename"`
	} `json:"_sys"`
	Values map[string]any `json:"_values"`
}

// Fetch queries a single document. Transport and query failures wrap
// apperr.ErrRemoteUnavailable; a null document is Empty.
func (r *Remote) Fetch(ctx context.Context, c content.Collection, key string) content.Result {
	if !validKey(key) {
		return content.Failed(fmt.Errorf("remote: invalid key %q: %w", key, apperr.ErrRemoteUnavailable))
	}
	var data struct {
		Document *documentNode `json:"document"`
	}
	vars := map[string]any{"collection": c.Name, "relativePath": c.RelativePath(key)}
	if err := r.execute(ctx, documentQuery, vars, &data); err != nil {
		return content.Failed(err)
	}
	if data.Document == nil {
		return content.Empty()
	}
	return content.Found(toRecord(*data.Document))
}

// FetchAll queries every document in a collection. No documents is Empty.
func (r *Remote) FetchAll(ctx context.Context, c content.Collection) content.Result {
	var data struct {
		Collection *struct {
			Documents struct {
				Edges []struct {
					Node *documentNode `json:"node"`
				} `json:"edges"`
			} `json:"documents"`
		} `json:"collection"`
	}
	vars := map[string]any{"collection": c.Name, "first": pageSize}
	if err := r.execute(ctx, collectionQuery, vars, &data); err != nil {
		return content.Failed(err)
	}
	if data.Collection == nil {
		return content.Empty()
	}
	recs := make([]content.Record, 0, len(data.Collection.Documents.Edges))
	for _, edge := range data.Collection.Documents.Edges {
		if edge.Node == nil {
			continue
		}
		recs = append(recs, toRecord(*edge.Node))
	}
	if len(recs) == 0 {
		return content.Empty()
	}
	return content.Found(recs...)
}

// execute runs a GraphQL query and decodes its data object into out.
func (r *Remote) execute(ctx context.Context, query string, variables map[string]any, out any) error {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("remote: throttled: %v: %w", err, apperr.ErrRemoteUnavailable)
		}
	}

	jsonBody, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		return fmt.Errorf("remote: marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("remote: create request: %v: %w", err, apperr.ErrRemoteUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("X-API-KEY", r.token)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remote: execute request: %v: %w", err, apperr.ErrRemoteUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return fmt.Errorf("remote: cms returned %d: %s: %w", resp.StatusCode, strings.TrimSpace(string(body)), apperr.ErrRemoteUnavailable)
	}

	var result graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("remote: decode response: %v: %w", err, apperr.ErrRemoteUnavailable)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("remote: graphql error: %s: %w", result.Errors[0].Message, apperr.ErrRemoteUnavailable)
	}
	if len(result.Data) == 0 || string(result.Data) == "null" {
		return fmt.Errorf("remote: response has no data: %w", apperr.ErrRemoteUnavailable)
	}
	if err := json.Unmarshal(result.Data, out); err != nil {
		return fmt.Errorf("remote: decode data: %v: %w", err, apperr.ErrRemoteUnavailable)
	}
	return nil
}

// toRecord maps a CMS document into the canonical record: the id is the
// filename without extension, system keys are dropped and a rich-text body is
// flattened to markdown.
func toRecord(n documentNode) content.Record {
	id := n.Sys.Filename
	if id == "" {
		id = strings.TrimSuffix(n.Sys.Basename, path.Ext(n.Sys.Basename))
	}
	fields := make(map[string]any, len(n.Values))
	for k, v := range n.Values {
		if strings.HasPrefix(k, "_") {
			continue
		}
		fields[k] = v
	}
	rec := content.Record{ID: id, Fields: fields}
	if b, ok := fields["body"]; ok {
		rec.Body = RichTextToMarkdown(b)
		delete(fields, "body")
	}
	return rec
}
