package ingest

import (
	"bytes"
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yourorg/policy-transfer/internal/errs"
	"github.com/yourorg/policy-transfer/internal/metrics"
	"github.com/yourorg/policy-transfer/internal/models"
	"github.com/yourorg/policy-transfer/internal/premium"
	"github.com/yourorg/policy-transfer/internal/storage"
)

// Service ingests uploaded JSON: the raw document is always persisted, policy
// batches are additionally flattened into the relational tables, and the
// processed results are published to the results store.
type Service struct {
	db         *gorm.DB
	results    storage.ObjectStore
	resultsKey string
	log        *zap.Logger
}

func New(db *gorm.DB, results storage.ObjectStore, resultsKey string, log *zap.Logger) *Service {
	return &Service{db: db, results: results, resultsKey: resultsKey, log: log}
}

// Result summarizes one successful ingest.
type Result struct {
	Policies   int
	ResultsKey string
}

// Ingest parses payload, stores it, and publishes processed results. The
// payload must be well-formed JSON; no further schema is enforced.
func (s *Service) Ingest(ctx context.Context, payload []byte, filename string) (*Result, error) {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, errs.Wrap(errs.ParseError, "invalid JSON", err)
	}

	// Best effort: payloads that are not policy batches store zero rows.
	var batch models.PolicyBatch
	_ = json.Unmarshal(payload, &batch)

	stored := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Document{
			Filename: filename,
			Payload:  datatypes.JSON(payload),
		}).Error; err != nil {
			return err
		}
		for _, br := range batch.Branches {
			for _, p := range br.Policies {
				if err := storePolicy(tx, br.BranchID, p); err != nil {
					return err
				}
				stored++
			}
		}
		return nil
	})
	if err != nil {
		metrics.IngestFailures.Inc()
		return nil, errs.Wrap(errs.SinkWriteError, "failed to store document", err)
	}

	metrics.DocumentsIngested.Inc()
	metrics.PoliciesStored.Add(float64(stored))
	s.log.Info("document ingested",
		zap.String("filename", filename),
		zap.Int("payload_bytes", len(payload)),
		zap.Int("policies", stored),
	)

	if err := s.publish(ctx); err != nil {
		metrics.IngestFailures.Inc()
		return nil, err
	}

	return &Result{Policies: stored, ResultsKey: s.resultsKey}, nil
}

func storePolicy(tx *gorm.DB, branchID string, p models.BatchPolicy) error {
	if err := tx.Create(&models.Policy{
		PolicyID:      p.PolicyID,
		PolicyType:    p.PolicyType,
		BasePremium:   p.BasePremium,
		VehicleDamage: p.VehicleInfo.VehicleDamage,
		RiskFactor:    p.RiskFactor,
		Discount:      p.CoverageInfo.Discount,
		BranchID:      branchID,
	}).Error; err != nil {
		return err
	}
	if err := tx.Create(&models.Customer{
		PolicyID: p.PolicyID,
		Name:     p.CustomerInfo.Name,
		Age:      p.CustomerInfo.Age,
		Address:  p.CustomerInfo.Address,
	}).Error; err != nil {
		return err
	}
	if err := tx.Create(&models.Vehicle{
		PolicyID:      p.PolicyID,
		Make:          p.VehicleInfo.Make,
		Model:         p.VehicleInfo.Model,
		Year:          p.VehicleInfo.Year,
		VehicleDamage: p.VehicleInfo.VehicleDamage,
	}).Error; err != nil {
		return err
	}
	return tx.Create(&models.Coverage{
		PolicyID:      p.PolicyID,
		Liability:     p.CoverageInfo.Liability,
		Collision:     p.CoverageInfo.Collision,
		Comprehensive: p.CoverageInfo.Comprehensive,
		Discount:      p.CoverageInfo.Discount,
	}).Error
}

// publish re-reads all stored policies, computes premiums, and uploads the
// processed result JSON to the results store.
func (s *Service) publish(ctx context.Context) error {
	var rows []models.Policy
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return errs.Wrap(errs.SinkWriteError, "failed to read stored policies", err)
	}

	processed := make([]models.ProcessedPolicy, 0, len(rows))
	for _, r := range rows {
		calc := premium.Calculate(r.BasePremium, r.VehicleDamage, r.Discount, r.RiskFactor)
		processed = append(processed, models.ProcessedPolicy{
			PolicyID:          r.PolicyID,
			PolicyType:        r.PolicyType,
			BasePremium:       r.BasePremium,
			VehicleDamage:     r.VehicleDamage,
			RiskFactor:        r.RiskFactor,
			Discount:          r.Discount,
			CalculatedPremium: calc,
			InsuranceGranted:  premium.Decision(calc, r.RiskFactor),
		})
	}

	b, err := json.MarshalIndent(processed, "", "  ")
	if err != nil {
		return errs.Wrap(errs.SinkWriteError, "failed to encode processed results", err)
	}
	if err := s.results.Put(ctx, s.resultsKey, bytes.NewReader(b)); err != nil {
		return errs.Wrap(errs.DestinationWriteError, "failed to upload processed results", err)
	}

	s.log.Info("processed results published",
		zap.String("key", s.resultsKey),
		zap.Int("policies", len(processed)),
	)
	return nil
}
