package service

import (
	"github.com/shishihs/insurance-self-game-sub003/internal/catalog"
	"github.com/shishihs/insurance-self-game-sub003/internal/engine"
	"github.com/shishihs/insurance-self-game-sub003/internal/game"
	"github.com/shishihs/insurance-self-game-sub003/internal/logging"
)

// ChooseInsurance completes the insurance-pick phase: the factory builds an
// offer of the requested type and duration, and the engine puts it in play.
func ChooseInsurance(repo GameRepo, factory *catalog.Factory, gameID uint, insuranceType game.InsuranceType, duration game.DurationType) (*game.Game, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, ErrGameNotFound
	}
	offer, err := factory.InsuranceOffer(insuranceType, duration)
	if err != nil {
		return nil, err
	}
	if err := engine.ChooseInsurance(g, &offer); err != nil {
		return nil, err
	}
	if err := repo.UpdateGame(g); err != nil {
		return nil, err
	}
	logging.Info("insurance added", logging.Fields{
		"game_id": g.ID, "insurance_type": string(insuranceType),
		"duration": string(duration), "burden": g.InsuranceBurden,
	})
	return g, nil
}

// BurdenReport is the premium view of a game's insurance portfolio.
type BurdenReport struct {
	ActiveCount       int     `json:"active_count"`
	InsuranceBurden   int     `json:"insurance_burden"`
	RecommendedBudget float64 `json:"recommended_budget"`
	Tolerance         string  `json:"tolerance"`
}

// InsuranceBurden reports the current burden plus a budget recommendation
// for the given risk-tolerance persona.
func InsuranceBurden(repo GameRepo, gameID uint, tolerance engine.RiskTolerance) (*BurdenReport, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, ErrGameNotFound
	}
	return &BurdenReport{
		ActiveCount:       len(g.ActiveInsurances),
		InsuranceBurden:   g.InsuranceBurden,
		RecommendedBudget: engine.BudgetRecommendation(g.Vitality, tolerance),
		Tolerance:         string(tolerance),
	}, nil
}

// PremiumQuote prices every configured insurance type for the game's
// current stage and risk profile.
type PremiumQuote struct {
	Name          string `json:"name"`
	InsuranceType string `json:"insurance_type"`
	Premium       int    `json:"premium"`
	RiskAdjusted  int    `json:"risk_adjusted"`
}

func QuotePremiums(repo GameRepo, factory *catalog.Factory, gameID uint) ([]PremiumQuote, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, ErrGameNotFound
	}
	offers, err := factory.InsuranceOffers()
	if err != nil {
		return nil, err
	}
	quotes := make([]PremiumQuote, 0, len(offers))
	for _, offer := range offers {
		base, err := engine.ComprehensivePremium(offer, g.Stage)
		if err != nil {
			return nil, err
		}
		adjusted, err := engine.RiskAdjustedPremium(offer, g.Stage, g.RiskProfile)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, PremiumQuote{
			Name:          offer.Name,
			InsuranceType: string(offer.Insurance.InsuranceType),
			Premium:       base.Value,
			RiskAdjusted:  adjusted.Value,
		})
	}
	return quotes, nil
}
