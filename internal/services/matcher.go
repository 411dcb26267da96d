package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
)

// MatcherService drives one persisted match run end to end: load the stored
// documents, extract and parse their text, fetch embeddings, score through
// the match engine, and save the result.
type MatcherService interface {
	ProcessRun(ctx context.Context, runID uuid.UUID) error
}

type matcherService struct {
	runRepo     repositories.MatchRunRepository
	docRepo     repositories.DocumentRepository
	textExtract TextExtractService
	extractor   ExtractorService
	embeddings  EmbeddingSource
	vectorStore VectorStoreService
	engine      MatchEngine
	explainer   ExplainerService
}

func NewMatcherService(
	runRepo repositories.MatchRunRepository,
	docRepo repositories.DocumentRepository,
	textExtract TextExtractService,
	extractor ExtractorService,
	embeddings EmbeddingSource,
	vectorStore VectorStoreService,
	engine MatchEngine,
	explainer ExplainerService,
) MatcherService {
	return &matcherService{
		runRepo:     runRepo,
		docRepo:     docRepo,
		textExtract: textExtract,
		extractor:   extractor,
		embeddings:  embeddings,
		vectorStore: vectorStore,
		engine:      engine,
		explainer:   explainer,
	}
}

func (m *matcherService) ProcessRun(ctx context.Context, runID uuid.UUID) error {
	if err := m.runRepo.UpdateStatus(runID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting match run %s\n", runID)

	run, err := m.runRepo.FindByID(runID)
	if err != nil {
		m.runRepo.UpdateError(runID, err.Error())
		return fmt.Errorf("failed to get match run: %w", err)
	}

	resumeDoc, err := m.docRepo.FindByID(run.ResumeDocumentID)
	if err != nil {
		m.runRepo.UpdateError(runID, fmt.Sprintf("resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	jobDoc, err := m.docRepo.FindByID(run.JobDocumentID)
	if err != nil {
		m.runRepo.UpdateError(runID, fmt.Sprintf("job document not found: %v", err))
		return fmt.Errorf("failed to get job document: %w", err)
	}

	// Step 1: Extract document text
	log.Println("📄 Extracting resume text...")
	resumeText, err := m.textExtract.ExtractText(resumeDoc.FilePath)
	if err != nil {
		m.runRepo.UpdateError(runID, fmt.Sprintf("failed to extract resume text: %v", err))
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	log.Println("📄 Extracting job description text...")
	jobText, err := m.textExtract.ExtractText(jobDoc.FilePath)
	if err != nil {
		m.runRepo.UpdateError(runID, fmt.Sprintf("failed to extract job text: %v", err))
		return fmt.Errorf("failed to extract job text: %w", err)
	}

	// Step 2: Parse structured records
	profile := m.extractor.ParseResume(CleanText(resumeText))
	requisition := m.extractor.ParseJobDescription(CleanText(jobText))

	// Step 3: Embeddings. A failed embedding downgrades the semantic
	// component to zero instead of failing the run.
	resumeEmbedding := m.embed(ctx, "resume", resumeText)
	jobEmbedding := m.embed(ctx, "job description", jobText)

	// Step 4: Score
	log.Println("⚖️  Scoring candidate against requisition...")
	result := m.engine.Match(profile, requisition, resumeEmbedding, jobEmbedding)

	// Step 5: Explain
	explanation := m.explainer.Explain(result)

	// Step 6: Save results
	log.Println("💾 Saving match results...")
	breakdown, err := json.Marshal(result)
	if err != nil {
		m.runRepo.UpdateError(runID, fmt.Sprintf("failed to encode breakdown: %v", err))
		return fmt.Errorf("failed to encode breakdown: %w", err)
	}
	breakdownStr := string(breakdown)
	embeddingKind := m.embeddings.Kind()

	updateData := &repositories.MatchRunUpdateData{
		OverallScore:    &result.OverallScore,
		SkillScore:      &result.SkillScore,
		ExperienceScore: &result.ExperienceScore,
		EducationScore:  &result.EducationScore,
		SemanticScore:   &result.SemanticScore,
		Breakdown:       &breakdownStr,
		Explanation:     &explanation,
		EmbeddingKind:   &embeddingKind,
	}

	if err := m.runRepo.UpdateResult(runID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	// Step 7: Keep vectors around for similarity search (best effort)
	if m.vectorStore != nil {
		m.upsertVector(ctx, resumeDoc.ID.String(), string(models.KindResume), resumeText, resumeEmbedding)
		m.upsertVector(ctx, jobDoc.ID.String(), string(models.KindJob), jobText, jobEmbedding)
	}

	log.Printf("✅ Match run %s completed: %.1f%%\n", runID, result.OverallScore)
	return nil
}

func (m *matcherService) embed(ctx context.Context, label, text string) []float32 {
	embedding, err := m.embeddings.Embed(ctx, text)
	if err != nil {
		log.Printf("⚠️  Failed to embed %s, semantic score will be 0: %v\n", label, err)
		return nil
	}
	return embedding
}

func (m *matcherService) upsertVector(ctx context.Context, docID, docKind, text string, embedding []float32) {
	if len(embedding) == 0 {
		return
	}
	if err := m.vectorStore.UpsertDocument(ctx, docID, docKind, PrepareEmbeddingText(text, 2000), embedding); err != nil {
		log.Printf("⚠️  Failed to upsert %s vector: %v\n", docKind, err)
	}
}
