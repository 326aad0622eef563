package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/apperrors"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	portsrepo "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/repositories"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"

	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

// How many of the most recent entries the advisor sees.
const tipRecentEntries = 5

const (
	tipDisabledMessage = "La funcionalidad de IA está deshabilitada. Por favor, configura tu API key."
	tipFailureMessage  = "Hubo un problema al generar el consejo. Por favor, inténtalo de nuevo más tarde."
)

// tipService implements the TipSvcFacade interface against the Gemini API.
// The collaborator is best-effort: configuration or provider failures degrade
// to fixed messages and never propagate as hard errors.
type tipService struct {
	BaseService
	entryRepo portsrepo.EntryRepository
	apiKey    string
	model     string
}

// NewTipService creates a new tip service. An empty apiKey disables the
// feature gracefully.
func NewTipService(entryRepo portsrepo.EntryRepository, apiKey, model string) portssvc.TipSvcFacade {
	return &tipService{entryRepo: entryRepo, apiKey: apiKey, model: model}
}

var _ portssvc.TipSvcFacade = (*tipService)(nil)

func (s *tipService) GenerateTip(ctx context.Context) (string, error) {
	if s.apiKey == "" {
		return tipDisabledMessage, nil
	}

	entries, err := s.entryRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for tip generation")
		return "", err
	}

	text, err := s.callModel(ctx, buildTipPrompt(entries))
	if err != nil {
		s.LogError(ctx, fmt.Errorf("%w: %v", apperrors.ErrExternalService, err), "Savings tip generation failed")
		return tipFailureMessage, nil
	}
	return text, nil
}

func (s *tipService) callModel(ctx context.Context, prompt string) (string, error) {
	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to initialise generative language client: %w", err)
	}

	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{
				Role:  "user",
				Parts: []*generativelanguage.Part{{Text: prompt}},
			},
		},
	}

	resp, err := svc.Models.GenerateContent("models/"+s.model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("generate content call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model %s", s.model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// buildTipPrompt renders the advisor prompt over the most recent entries.
// The entry collection is stored most-recent-first, so the head is the
// recency window.
func buildTipPrompt(entries []domain.Entry) string {
	lines := make([]string, 0, tipRecentEntries)
	for i, e := range entries {
		if i == tipRecentEntries {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s: €%s", e.Concept, e.Amount.StringFixed(2)))
	}
	recent := strings.Join(lines, "\n")
	if recent == "" {
		recent = "El usuario aún no ha registrado ahorros."
	}

	return fmt.Sprintf(`Eres un asesor financiero experto y amigable. Un usuario está registrando sus ahorros diarios en Euros.
Basado en sus ahorros más recientes, ofrécele un consejo de ahorro corto, práctico y motivador en español.
El consejo debe ser de no más de dos frases. No seas genérico.

Ahorros recientes del usuario:
%s

Ejemplo de respuesta: "¡Excelente trabajo ahorrando en comida! Para potenciarlo, intenta planificar tus comidas para la semana. Puede reducir gastos inesperados."

Ahora, genera un nuevo consejo para el usuario.`, recent)
}
