package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"astroportal/internal/models/db_models"
	"astroportal/internal/repositories"
	"astroportal/pkg/metrics"
	"astroportal/pkg/utils"
)

// FallbackHoroscopeBody is persisted verbatim when the provider
// answers with no content.
const FallbackHoroscopeBody = "<p>Gwiazdy milczą. Spróbuj ponownie później.</p>"

const systemPrompt = "Jesteś doświadczonym polskim astrologiem. Piszesz wnikliwe, " +
	"osobiste horoskopy w języku polskim, w formacie HTML (akapity <p>, " +
	"śródtytuły <h3>). Ton ciepły i konkretny, bez ogólników."

var categoryGuidance = map[db_models.HoroscopeType]string{
	db_models.HoroscopeDaily:    "Napisz horoskop dzienny na dziś: nastrój dnia, relacje, praca, zdrowie, szczęśliwa godzina.",
	db_models.HoroscopeWeekly:   "Napisz horoskop tygodniowy na najbliższe 7 dni: przegląd tygodnia dzień po dniu w skrócie, kluczowe decyzje.",
	db_models.HoroscopeMonthly:  "Napisz horoskop miesięczny: miłość, kariera, finanse, zdrowie, najważniejsze daty miesiąca.",
	db_models.HoroscopeYearly:   "Napisz horoskop roczny: główne tematy roku kwartał po kwartale, szanse i zagrożenia.",
	db_models.HoroscopeLifetime: "Napisz horoskop życiowy: charakterystyka osobowości, powołanie, relacje, mocne i słabe strony, droga życiowa.",
}

type GenerationServiceInterface interface {
	// BeginGeneration claims a pending order (atomic conditional
	// update) and runs the pipeline. ErrOrderNotPending means another
	// caller already claimed it.
	BeginGeneration(ctx context.Context, orderID uuid.UUID) error

	// Generate runs fetch -> assemble -> one provider call -> persist
	// for an order already in processing.
	Generate(ctx context.Context, orderID uuid.UUID) error
}

type GenerationService struct {
	orderRepo   repositories.OrderRepository
	profileRepo repositories.ProfileRepository
	creditRepo  repositories.CreditRepository
	client      utils.GenerationClientInterface
}

func NewGenerationService(
	orderRepo repositories.OrderRepository,
	profileRepo repositories.ProfileRepository,
	creditRepo repositories.CreditRepository,
	client utils.GenerationClientInterface,
) GenerationServiceInterface {
	return &GenerationService{
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		creditRepo:  creditRepo,
		client:      client,
	}
}

func (g *GenerationService) BeginGeneration(ctx context.Context, orderID uuid.UUID) error {
	order, err := g.orderRepo.FindById(ctx, orderID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if order == nil {
		return utils.ErrOrderNotFound
	}

	claimed, err := g.orderRepo.MarkProcessing(ctx, orderID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !claimed {
		log.Printf("order %s: not pending, skipping generation", orderID)
		return utils.ErrOrderNotPending
	}

	return g.Generate(ctx, orderID)
}

func (g *GenerationService) Generate(ctx context.Context, orderID uuid.UUID) error {
	if err := g.generate(ctx, orderID); err != nil {
		// The order stays in processing; the failure counter is the
		// reconciliation signal.
		metrics.GenerationsFailed.Inc()
		log.Printf("order %s: generation failed: %v", orderID, err)
		return err
	}
	metrics.GenerationsCompleted.Inc()
	return nil
}

func (g *GenerationService) generate(ctx context.Context, orderID uuid.UUID) error {
	order, err := g.orderRepo.FindById(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return utils.ErrOrderNotFound
	}
	if order.Status != db_models.OrderStatusProcessing {
		return utils.ErrOrderNotPending
	}

	profile, err := g.profileRepo.FindByAccountId(ctx, order.AccountID)
	if err != nil {
		return err
	}
	if profile == nil || profile.ZodiacSign == "" {
		return utils.ErrZodiacUnresolved
	}

	answers, err := g.creditRepo.ListAnswers(ctx, order.AccountID)
	if err != nil {
		return err
	}

	prompt := buildHoroscopePrompt(order, profile, answers)

	content, err := g.client.GenerateText(ctx, systemPrompt, prompt)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(content) == "" {
		content = FallbackHoroscopeBody
	}

	validFrom, validTo := utils.ValidityWindow(order.Category, time.Now())
	horoscope := &db_models.Horoscope{
		OrderID:      order.ID,
		AccountID:    order.AccountID,
		AstrologerID: order.AstrologerID,
		Category:     order.Category,
		Title:        fmt.Sprintf("%s — %s", utils.FormatHoroscopeType(order.Category), profile.ZodiacSign),
		Body:         content,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
	}

	return g.orderRepo.CompleteWithHoroscope(ctx, order.ID, horoscope)
}

// buildHoroscopePrompt assembles the fixed template: category guidance
// plus every user field the profile and answered questions provide.
func buildHoroscopePrompt(order *db_models.Order, profile *db_models.Profile, answers []db_models.CreditAnswer) string {
	var b strings.Builder

	b.WriteString(categoryGuidance[order.Category])
	b.WriteString("\n\nDane osoby:\n")
	fmt.Fprintf(&b, "- Znak zodiaku: %s\n", profile.ZodiacSign)
	if profile.FirstName != "" {
		fmt.Fprintf(&b, "- Imię: %s\n", profile.FirstName)
	}
	if profile.BirthDate != "" {
		fmt.Fprintf(&b, "- Data urodzenia: %s\n", profile.BirthDate)
	}
	if profile.BirthTime != "" {
		fmt.Fprintf(&b, "- Godzina urodzenia: %s\n", profile.BirthTime)
	}
	if profile.BirthPlace != "" {
		fmt.Fprintf(&b, "- Miejsce urodzenia: %s\n", profile.BirthPlace)
	}
	if profile.CurrentLocation != "" {
		fmt.Fprintf(&b, "- Obecna lokalizacja: %s\n", profile.CurrentLocation)
	}
	if profile.RelationshipStatus != "" {
		fmt.Fprintf(&b, "- Stan związku: %s\n", profile.RelationshipStatus)
	}

	if len(answers) > 0 {
		b.WriteString("\nOdpowiedzi z ankiety profilowej:\n")
		for _, a := range answers {
			fmt.Fprintf(&b, "- %s: %s\n", a.Question.Question, a.Answer)
		}
	}

	if order.Note != "" {
		fmt.Fprintf(&b, "\nUwagi do zamówienia: %s\n", order.Note)
	}

	return b.String()
}
