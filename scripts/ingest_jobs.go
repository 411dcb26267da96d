package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

// Seeds the vector store with job description documents so uploaded resumes
// can be searched against them right away.
//
// Usage: go run scripts/ingest_jobs.go <job-file.pdf|txt> [...]
func main() {
	if len(os.Args) < 2 {
		log.Fatal("❌ Usage: ingest_jobs <job-file> [...]")
	}

	log.Println("🚀 Starting job description ingestion...")

	cfg := config.Load()

	var embeddings services.EmbeddingSource
	var err error
	if cfg.Embedding.GeminiAPIKey != "" {
		embeddings, err = services.NewGeminiEmbeddingSource(cfg.Embedding.GeminiAPIKey, cfg.Worker.RetryMaxAttempts)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini embeddings: %v", err)
		}
	} else {
		embeddings = services.NewHashEmbeddingSource(cfg.Embedding.Dimension)
		log.Println("⚠️  No GEMINI_API_KEY set, using hash-fallback embeddings")
	}

	vectorStore, err := services.NewVectorStoreService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		cfg.Embedding.Dimension,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	textExtract := services.NewTextExtractService()
	ctx := context.Background()

	for _, path := range os.Args[1:] {
		log.Printf("📄 Processing %s...\n", filepath.Base(path))

		text, err := textExtract.ExtractText(path)
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v\n", path, err)
			continue
		}

		embedding, err := embeddings.Embed(ctx, text)
		if err != nil {
			log.Printf("⚠️  Failed to embed %s: %v\n", path, err)
			continue
		}

		docID := uuid.New().String()
		err = vectorStore.UpsertDocument(ctx, docID, string(models.KindJob),
			services.PrepareEmbeddingText(text, 2000), embedding)
		if err != nil {
			log.Printf("⚠️  Failed to upsert %s: %v\n", path, err)
			continue
		}

		log.Printf("✅ Ingested %s as %s\n", filepath.Base(path), docID)
	}

	log.Println("✅ Ingestion complete")
}
