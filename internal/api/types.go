package api

// Endpoint paths served by the QuickHelp backend.
const (
	PathStats    = "/api/stats"
	PathClusters = "/api/clusters"
	PathSearch   = "/api/search"
	PathAsk      = "/api/ask"
	PathCluster  = "/api/cluster"
	PathIndex    = "/api/index"
)

// unknownFailure is shown when a failed response carries neither message nor error.
const unknownFailure = "Unknown error"

// Envelope is the part every backend response shares.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// FailureText returns the human-readable failure text, preferring message over error.
func (e Envelope) FailureText() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != "" {
		return e.Error
	}
	return unknownFailure
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query      string `json:"query"`
	Mode       string `json:"mode"`
	MaxResults int    `json:"max_results"`
}

// SearchResult is one ranked hit.
type SearchResult struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Path    string   `json:"path"`
	Score   float64  `json:"score"`
	Tags    []string `json:"tags"`
}

// SearchResponse is the reply to POST /api/search.
type SearchResponse struct {
	Envelope
	Results []SearchResult `json:"results"`
}

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Question string `json:"question"`
	Mode     string `json:"mode"`
}

// Source is a document the answer was grounded on.
type Source struct {
	ID    int      `json:"id"`
	Title string   `json:"title"`
	Path  string   `json:"path"`
	Score float64  `json:"score"`
	Tags  []string `json:"tags"`
}

// AskResponse is the reply to POST /api/ask.
type AskResponse struct {
	Envelope
	Answer   string   `json:"answer"`
	Sources  []Source `json:"sources"`
	Question string   `json:"question,omitempty"`
}

// ClusterRequest is the body of POST /api/cluster.
type ClusterRequest struct {
	Algorithm string `json:"algorithm"`
}

// ClusterDocument is a sample member of a cluster.
type ClusterDocument struct {
	Title string `json:"title"`
	Path  string `json:"path,omitempty"`
}

// Cluster is one group of related documents.
type Cluster struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Size      int               `json:"size"`
	Keywords  []string          `json:"keywords"`
	Tags      []string          `json:"tags"`
	Documents []ClusterDocument `json:"documents"`
}

// ClustersResponse is the reply to GET /api/clusters and POST /api/cluster.
type ClustersResponse struct {
	Envelope
	Clusters []Cluster `json:"clusters"`
}

// IndexRequest is the body of POST /api/index.
type IndexRequest struct {
	Path string `json:"path"`
}

// Stats summarises the indexed knowledge base. The GET /api/stats reply
// fills the three counters; POST /api/index fills all of it.
type Stats struct {
	TotalDocuments int      `json:"total_documents"`
	TotalWords     int      `json:"total_words"`
	UniqueTags     int      `json:"unique_tags"`
	TotalTags      int      `json:"total_tags,omitempty"`
	AvgWordsPerDoc float64  `json:"avg_words_per_doc"`
	Formats        []string `json:"formats"`
}

// StatsResponse is the reply to GET /api/stats.
type StatsResponse struct {
	Envelope
	Stats *Stats `json:"stats,omitempty"`
}

// IndexResponse is the reply to POST /api/index.
type IndexResponse struct {
	Envelope
	Stats *Stats `json:"stats,omitempty"`
}
