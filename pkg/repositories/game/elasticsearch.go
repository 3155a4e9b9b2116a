package game

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	// DefaultIndexPrefix names the rounds index when no prefix is configured
	DefaultIndexPrefix = "blackjack"
	// maxSearchSize is the Elasticsearch default for index.max_result_window
	maxSearchSize = 10000
)

// roundSort orders every search so search_after can page through it. The
// document id breaks ties between games that share a number.
var roundSort = []interface{}{
	map[string]interface{}{"game_number": map[string]string{"order": "asc"}},
	map[string]interface{}{"round": map[string]string{"order": "asc"}},
	map[string]interface{}{"id": map[string]string{"order": "asc"}},
}

const roundsMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"game_id": { "type": "keyword" },
			"game_number": { "type": "integer" },
			"round": { "type": "integer" },
			"player_cards": { "type": "keyword" },
			"dealer_cards": { "type": "keyword" },
			"player_score": { "type": "integer" },
			"dealer_score": { "type": "integer" },
			"outcome": { "type": "integer" },
			"stake": { "type": "long" },
			"wallet": { "type": "long" },
			"bet": { "type": "long" },
			"completed_at": { "type": "date" }
		}
	}
}`

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
}

// DefaultElasticsearchConfig returns a default configuration for Elasticsearch
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:         "http://localhost:9200",
		IndexPrefix: DefaultIndexPrefix,
	}
}

// ElasticsearchRepository implements the Repository interface using
// Elasticsearch. Every round is one document in the rounds index.
type ElasticsearchRepository struct {
	client   *elasticsearch.Client
	index    string
	pageSize int
}

// NewElasticsearchRepository connects to Elasticsearch and creates the
// rounds index if it doesn't exist
func NewElasticsearchRepository(ctx context.Context, config *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	if config == nil {
		config = DefaultElasticsearchConfig()
	}

	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	prefix := config.IndexPrefix
	if prefix == "" {
		prefix = DefaultIndexPrefix
	}

	repo := &ElasticsearchRepository{
		client:   client,
		index:    prefix + "_rounds",
		pageSize: maxSearchSize,
	}
	if err := repo.initIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}
	return repo, nil
}

// Index returns the name of the rounds index
func (r *ElasticsearchRepository) Index() string {
	return r.index
}

func (r *ElasticsearchRepository) initIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if rounds index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  bytes.NewReader([]byte(roundsMapping)),
	}
	res, err = req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating rounds index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating rounds index: %s", res.String())
	}
	return nil
}

// roundDocumentID identifies a round by its game and number so a second
// copy of the same round collides with the first
func roundDocumentID(record *RoundRecord) string {
	return fmt.Sprintf("%s_%d", record.GameID, record.Round)
}

// SaveRound creates the round's document. A round that is already stored
// is rejected.
func (r *ElasticsearchRepository) SaveRound(ctx context.Context, result *entities.RoundResult) error {
	if result == nil {
		return types.NewGameError(types.ErrInvalidArgument, "round result is nil")
	}
	record := NewRoundRecord(result)

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshaling round: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: roundDocumentID(record),
		OpType:     "create",
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error indexing round", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusConflict {
		return types.NewGameErrorf(types.ErrDatabaseError, "round %d of game %s is already stored", record.Round, record.GameID)
	}
	if res.IsError() {
		return types.NewGameErrorf(types.ErrDatabaseError, "error indexing round: %s", res.String())
	}
	return nil
}

// GetRounds retrieves the rounds of a game
func (r *ElasticsearchRepository) GetRounds(ctx context.Context, gameID string) ([]*RoundRecord, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{"game_id": gameID},
		},
	}
	return r.search(ctx, query)
}

// ListGames summarises every game, ordered by game number
func (r *ElasticsearchRepository) ListGames(ctx context.Context) ([]*GameInfo, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"match_all": map[string]interface{}{},
		},
	}

	records, err := r.search(ctx, query)
	if err != nil {
		return nil, err
	}

	var order []string
	byGame := make(map[string][]*RoundRecord)
	for _, record := range records {
		if _, seen := byGame[record.GameID]; !seen {
			order = append(order, record.GameID)
		}
		byGame[record.GameID] = append(byGame[record.GameID], record)
	}

	games := make([]*GameInfo, 0, len(order))
	for _, gameID := range order {
		games = append(games, summarize(gameID, byGame[gameID]))
	}
	return games, nil
}

// Close is a no-op; the client holds no resources that need releasing
func (r *ElasticsearchRepository) Close() error {
	return nil
}

// search runs query sorted by roundSort and follows search_after until
// every matching round has been read
func (r *ElasticsearchRepository) search(ctx context.Context, query map[string]interface{}) ([]*RoundRecord, error) {
	query["sort"] = roundSort

	var records []*RoundRecord
	for {
		page, after, err := r.searchPage(ctx, query)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
		if len(page) < r.pageSize || after == nil {
			return records, nil
		}
		query["search_after"] = after
	}
}

func (r *ElasticsearchRepository) searchPage(ctx context.Context, query map[string]interface{}) ([]*RoundRecord, []interface{}, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding query: %w", err)
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(body)),
		r.client.Search.WithSize(r.pageSize),
	)
	if err != nil {
		return nil, nil, types.WrapError(types.ErrDatabaseError, "error searching rounds", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, nil, types.NewGameErrorf(types.ErrDatabaseError, "error searching rounds: %s", res.String())
	}

	return decodeRoundHits(res.Body)
}

// decodeRoundHits reads the round documents out of a search response along
// with the sort values of the last hit
func decodeRoundHits(body io.Reader) ([]*RoundRecord, []interface{}, error) {
	var result struct {
		Hits struct {
			Hits []struct {
				Source RoundRecord   `json:"_source"`
				Sort   []interface{} `json:"sort"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, nil, fmt.Errorf("error parsing search response: %w", err)
	}

	hits := result.Hits.Hits
	records := make([]*RoundRecord, 0, len(hits))
	for i := range hits {
		records = append(records, &hits[i].Source)
	}

	var after []interface{}
	if len(hits) > 0 {
		after = hits[len(hits)-1].Sort
	}
	return records, after, nil
}
