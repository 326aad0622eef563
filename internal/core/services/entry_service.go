package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/apperrors"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// entryService implements the EntrySvcFacade interface.
type entryService struct {
	BaseService
	entryRepo       portsrepo.EntryRepository
	balanceConcepts []string
}

// NewEntryService creates a new entry service. balanceConcepts is the
// configured account-snapshot subset; transfers may only target it.
func NewEntryService(repo portsrepo.EntryRepository, balanceConcepts []string) portssvc.EntrySvcFacade {
	return &entryService{entryRepo: repo, balanceConcepts: balanceConcepts}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// sortEntries re-sorts the collection descending by date. The sort is stable
// so entries on the same day keep their insertion order; consumers relying on
// most-recent-first never re-sort themselves.
func sortEntries(entries []domain.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}

// buildEntry validates a request and constructs the signed domain entry.
// Amounts arrive as positive magnitudes in the native currency; the stored
// reference amount is originalAmount times the exchange rate (1 for EUR).
func buildEntry(entryType string, amount decimal.Decimal, currency domain.Currency, exchangeRate *decimal.Decimal, concept, note, date string) (domain.Entry, error) {
	if _, err := domain.ParseDay(date); err != nil {
		return domain.Entry{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}
	if !amount.GreaterThan(decimal.Zero) {
		return domain.Entry{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	referenceAmount := amount
	switch currency {
	case domain.CurrencyEUR:
		if exchangeRate != nil {
			return domain.Entry{}, fmt.Errorf("%w: exchange rate is only valid for USD entries", apperrors.ErrValidation)
		}
	case domain.CurrencyUSD:
		if exchangeRate == nil || !exchangeRate.GreaterThan(decimal.Zero) {
			return domain.Entry{}, fmt.Errorf("%w: a positive exchange rate is required for USD entries", apperrors.ErrValidation)
		}
		referenceAmount = amount.Mul(*exchangeRate)
	default:
		return domain.Entry{}, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, currency)
	}

	if entryType == dto.EntryTypeExpense {
		referenceAmount = referenceAmount.Neg()
		amount = amount.Neg()
	}

	return domain.Entry{
		Amount:         referenceAmount,
		Concept:        concept,
		Note:           note,
		Date:           date,
		Currency:       currency,
		OriginalAmount: amount,
		ExchangeRate:   exchangeRate,
	}, nil
}

func (s *entryService) ListEntries(ctx context.Context, date string) ([]domain.Entry, error) {
	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries")
		return nil, err
	}
	if date == "" {
		return entries, nil
	}

	filtered := make([]domain.Entry, 0)
	for _, e := range entries {
		if e.Date == date {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.Entry, error) {
	entry, err := buildEntry(req.Type, req.Amount, req.Currency, req.ExchangeRate, req.Concept, req.Note, req.Date)
	if err != nil {
		return nil, err
	}
	entry.EntryID = uuid.NewString()

	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for create")
		return nil, err
	}

	entries = append(entries, entry)
	sortEntries(entries)
	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to save entries", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry created", slog.String("entry_id", entry.EntryID), slog.String("date", entry.Date))
	return &entry, nil
}

func (s *entryService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) ([]domain.Entry, error) {
	if req.SourceConcept == req.DestinationConcept {
		return nil, fmt.Errorf("%w: source and destination must differ", apperrors.ErrValidation)
	}
	if !s.isBalanceConcept(req.DestinationConcept) {
		return nil, fmt.Errorf("%w: destination must be a balance concept", apperrors.ErrValidation)
	}

	note := req.Note
	debitNote := fmt.Sprintf("Retiro hacia %s", req.DestinationConcept)
	creditNote := fmt.Sprintf("Retiro desde %s", req.SourceConcept)
	if note != "" {
		debitNote = fmt.Sprintf("%s (%s)", debitNote, note)
		creditNote = fmt.Sprintf("%s (%s)", creditNote, note)
	}

	debit, err := buildEntry(dto.EntryTypeExpense, req.Amount, req.Currency, req.ExchangeRate, req.SourceConcept, debitNote, req.Date)
	if err != nil {
		return nil, err
	}
	credit, err := buildEntry(dto.EntryTypeIncome, req.Amount, req.Currency, req.ExchangeRate, req.DestinationConcept, creditNote, req.Date)
	if err != nil {
		return nil, err
	}
	debit.EntryID = uuid.NewString()
	credit.EntryID = uuid.NewString()

	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for transfer")
		return nil, err
	}

	// Both legs land in one write so no reader ever sees half a transfer.
	entries = append(entries, debit, credit)
	sortEntries(entries)
	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to save transfer entries")
		return nil, err
	}

	s.LogInfo(ctx, "Transfer recorded",
		slog.String("source", req.SourceConcept),
		slog.String("destination", req.DestinationConcept),
		slog.String("date", req.Date))
	return []domain.Entry{debit, credit}, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	entry, err := buildEntry(req.Type, req.Amount, req.Currency, req.ExchangeRate, req.Concept, req.Note, req.Date)
	if err != nil {
		return nil, err
	}
	entry.EntryID = entryID

	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for update")
		return nil, err
	}

	found := false
	for i := range entries {
		if entries[i].EntryID == entryID {
			entries[i] = entry
			found = true
			break
		}
	}
	if !found {
		// Stale reference; tolerated as a no-op.
		s.LogDebug(ctx, "Entry not found for update", slog.String("entry_id", entryID))
		return nil, nil
	}

	sortEntries(entries)
	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to save entries after update", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry updated", slog.String("entry_id", entryID))
	return &entry, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, entryID string) error {
	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for delete")
		return err
	}

	remaining := entries[:0:0]
	for _, e := range entries {
		if e.EntryID != entryID {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) == len(entries) {
		s.LogDebug(ctx, "Entry not found for delete", slog.String("entry_id", entryID))
		return nil
	}

	if err := s.entryRepo.SaveEntries(ctx, remaining); err != nil {
		s.LogError(ctx, err, "Failed to save entries after delete", slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *entryService) isBalanceConcept(name string) bool {
	for _, c := range s.balanceConcepts {
		if c == name {
			return true
		}
	}
	return false
}
