package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// VectorStoreService keeps document embeddings in Qdrant so that already
// scored resumes can be found again by similarity search.
type VectorStoreService interface {
	InitCollection() error
	UpsertDocument(ctx context.Context, docID string, docKind string, text string, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, docKind string, limit int) ([]VectorSearchResult, error)
	DeleteDocument(ctx context.Context, docID string) error
}

type VectorSearchResult struct {
	ID       string
	Score    float32
	Text     string
	DocKind  string
	Metadata map[string]interface{}
}

type vectorStoreService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewVectorStoreService(urlStr, apiKey, collectionName string, vectorSize int) (VectorStoreService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &vectorStoreService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     uint64(vectorSize),
	}, nil
}

// InitCollection implements VectorStoreService.
func (q *vectorStoreService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertDocument implements VectorStoreService.
func (q *vectorStoreService) UpsertDocument(ctx context.Context, docID string, docKind string, text string, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"doc_id":   docID,
			"doc_kind": docKind,
			"text":     text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	return nil
}

// SearchSimilar implements VectorStoreService.
func (q *vectorStoreService) SearchSimilar(ctx context.Context, queryEmbedding []float32, docKind string, limit int) ([]VectorSearchResult, error) {
	var filter *qdrant.Filter
	if docKind != "" {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("doc_kind", docKind),
			},
		}
	}

	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var results []VectorSearchResult
	for _, point := range searchResult {
		payload := point.Payload

		result := VectorSearchResult{
			Score:    point.Score,
			Metadata: make(map[string]interface{}),
		}

		if docID, ok := payload["doc_id"]; ok {
			if val, ok := docID.GetKind().(*qdrant.Value_StringValue); ok {
				result.ID = val.StringValue
			}
		}

		if text, ok := payload["text"]; ok {
			if val, ok := text.GetKind().(*qdrant.Value_StringValue); ok {
				result.Text = val.StringValue
			}
		}

		if kind, ok := payload["doc_kind"]; ok {
			if val, ok := kind.GetKind().(*qdrant.Value_StringValue); ok {
				result.DocKind = val.StringValue
			}
		}

		for key, value := range payload {
			result.Metadata[key] = value
		}

		results = append(results, result)
	}

	return results, nil
}

// DeleteDocument implements VectorStoreService.
func (q *vectorStoreService) DeleteDocument(ctx context.Context, docID string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("doc_id", docID),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}
