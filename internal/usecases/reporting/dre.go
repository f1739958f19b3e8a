package reporting

import (
	"strings"
	"time"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

// Divisão ilustrativa da receita entre alimentos e bebidas
const (
	foodSalesShare     = 0.70
	beverageSalesShare = 0.30
)

// Grupos de despesas operacionais
const (
	GroupPersonnel      = "personnel"
	GroupOccupancy      = "occupancy"
	GroupUtilities      = "utilities"
	GroupMarketing      = "marketing"
	GroupAdministrative = "administrative"
)

var cmvCategories = map[string]bool{
	"ingredientes": true,
	"insumos":      true,
	"bebidas":      true,
	"alimentos":    true,
	"fornecedores": true,
	"embalagens":   true,
	"mercadorias":  true,
}

var expenseGroups = []struct {
	group    string
	keywords []string
}{
	{GroupPersonnel, []string{"pessoal", "salario", "folha", "funcionario", "encargo", "beneficio", "labore"}},
	{GroupOccupancy, []string{"aluguel", "condominio", "iptu", "ocupacao"}},
	{GroupUtilities, []string{"energia", "luz", "agua", "gas", "internet", "telefone", "utilidade"}},
	{GroupMarketing, []string{"marketing", "publicidade", "propaganda", "divulgacao"}},
}

// Formas de pagamento de cartão usadas em dados importados
var cardAliases = map[string]bool{
	"credito":     true,
	"debito":      true,
	"cartao":      true,
	"credit_card": true,
	"debit_card":  true,
	"card":        true,
}

func isCardPayment(method string) bool {
	normalized := strings.ReplaceAll(utils.NormalizeText(method), " ", "_")
	return domain.IsCardPayment(normalized) || cardAliases[normalized]
}

// IsCMVCategory indica se a categoria de despesa compõe o custo da mercadoria vendida
func IsCMVCategory(category string) bool {
	return cmvCategories[utils.NormalizeText(category)]
}

// ExpenseGroup classifica uma categoria de despesa operacional pelas palavras
// do nome, aceitando plurais ("salarios", "encargos")
func ExpenseGroup(category string) string {
	words := strings.FieldsFunc(utils.NormalizeText(category), func(r rune) bool {
		return r == ' ' || r == '_' || r == '/'
	})

	for _, candidate := range expenseGroups {
		for _, keyword := range candidate.keywords {
			for _, word := range words {
				if word == keyword || word == keyword+"s" || word == keyword+"es" {
					return candidate.group
				}
			}
		}
	}
	return GroupAdministrative
}

// BuildDRE monta o demonstrativo a partir dos lançamentos do período.
// Lançamentos pendentes e cancelados são ignorados.
func BuildDRE(restaurant *domain.Restaurant, period domain.Period, entries []*domain.CashFlowEntry) *domain.DRE {
	var grossRevenue, cardRevenue, cmv float64
	groups := map[string]float64{
		GroupPersonnel:      0,
		GroupOccupancy:      0,
		GroupUtilities:      0,
		GroupMarketing:      0,
		GroupAdministrative: 0,
	}

	for _, entry := range entries {
		if entry.Status != domain.CashFlowCompleted || !period.Contains(entry.Date) {
			continue
		}

		if entry.Type == domain.CashFlowIncome {
			grossRevenue += entry.Amount
			if isCardPayment(entry.PaymentMethod) {
				cardRevenue += entry.Amount
			}
			continue
		}

		if IsCMVCategory(entry.Category) {
			cmv += entry.Amount
			continue
		}
		groups[ExpenseGroup(entry.Category)] += entry.Amount
	}

	taxes := grossRevenue * restaurant.TaxRate
	cardFees := cardRevenue * restaurant.CardFeeRate
	netRevenue := grossRevenue - taxes - cardFees
	grossProfit := netRevenue - cmv

	operating := make([]domain.ExpenseGroup, 0, len(groups))
	var totalOperating float64
	for _, group := range []string{GroupPersonnel, GroupOccupancy, GroupUtilities, GroupMarketing, GroupAdministrative} {
		totalOperating += groups[group]
		operating = append(operating, domain.ExpenseGroup{
			Group: group,
			Total: utils.RoundWithTwoDecimalPlace(groups[group]),
		})
	}

	operatingResult := grossProfit - totalOperating

	return &domain.DRE{
		RestaurantID:      restaurant.ID,
		Period:            period,
		GrossRevenue:      utils.RoundWithTwoDecimalPlace(grossRevenue),
		FoodSales:         utils.RoundWithTwoDecimalPlace(grossRevenue * foodSalesShare),
		BeverageSales:     utils.RoundWithTwoDecimalPlace(grossRevenue * beverageSalesShare),
		Taxes:             utils.RoundWithTwoDecimalPlace(taxes),
		CardFees:          utils.RoundWithTwoDecimalPlace(cardFees),
		NetRevenue:        utils.RoundWithTwoDecimalPlace(netRevenue),
		CMV:               utils.RoundWithTwoDecimalPlace(cmv),
		GrossProfit:       utils.RoundWithTwoDecimalPlace(grossProfit),
		OperatingExpenses: operating,
		TotalOperating:    utils.RoundWithTwoDecimalPlace(totalOperating),
		OperatingResult:   utils.RoundWithTwoDecimalPlace(operatingResult),
		NetResult:         utils.RoundWithTwoDecimalPlace(operatingResult),
		Margins: domain.DREMargins{
			GrossMargin:     utils.Percentage(grossProfit, netRevenue),
			OperatingMargin: utils.Percentage(operatingResult, netRevenue),
			NetMargin:       utils.Percentage(operatingResult, netRevenue),
			CMVPercentage:   utils.Percentage(cmv, netRevenue),
		},
		GeneratedAt: time.Now(),
	}
}

// ClassifyCMV compara o CMV percentual com a meta do restaurante
func ClassifyCMV(percentage, target float64) domain.CMVStatus {
	switch {
	case percentage <= target:
		return domain.CMVHealthy
	case percentage <= target+5:
		return domain.CMVAttention
	}
	return domain.CMVCritical
}
