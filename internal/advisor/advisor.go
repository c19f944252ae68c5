// Package advisor implements the financial assistant engine: a single-shot
// request/response transform from free text to a human-readable reply.
//
// A message flows through command matching (explicit verbs that record
// data), the calculation interpreter, then — when nothing numeric applies —
// either the Gemini model with the user's snapshot as context or the canned
// topic composer. Every path ends in a string; the engine never propagates
// a fault to its caller.
package advisor

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"finbot/internal/logger"
	"finbot/internal/models"
)

// TransactionRecorder is the write surface used by the despesa/receita/
// investimento command verbs.
type TransactionRecorder interface {
	CreateTransaction(userID uint, kind models.TransactionKind, category, subcategory string, amount int64, description string, date time.Time) (*models.Transaction, error)
}

// GoalRecorder is the write surface used by the meta command verb.
type GoalRecorder interface {
	CreateGoal(userID uint, title string, targetAmount int64, deadline *time.Time) (*models.Goal, error)
}

// BudgetRecorder is the write surface used by the orçamento command verb.
// The command always targets the current calendar month.
type BudgetRecorder interface {
	SetBudget(userID uint, category string, amount int64, month, year int) (*models.Budget, error)
}

// Options configures the optional model-backed reply path.
type Options struct {
	GeminiAPIKey string
	GeminiModel  string
}

// Advisor is the engine façade. It holds no per-conversation state; prior
// turns are never consulted.
type Advisor struct {
	gateway      Gateway
	transactions TransactionRecorder
	goals        GoalRecorder
	budgets      BudgetRecorder
	opts         Options
	now          func() time.Time
}

// New creates an Advisor over the given persistence surfaces.
func New(gateway Gateway, transactions TransactionRecorder, goals GoalRecorder, budgets BudgetRecorder, opts Options) *Advisor {
	return &Advisor{
		gateway:      gateway,
		transactions: transactions,
		goals:        goals,
		budgets:      budgets,
		opts:         opts,
		now:          time.Now,
	}
}

// Command verb patterns, e.g. "despesa 100 alimentação". Anchored to the
// start of the message so prose that merely mentions "investimento" falls
// through to the interpreter. Category and title tokens use \p{L} so
// accented words match.
var (
	expensePattern    = regexp.MustCompile(`^despesa (\d+(?:\.\d+)?) (\p{L}+)`)
	incomePattern     = regexp.MustCompile(`^receita (\d+(?:\.\d+)?) (\p{L}+)`)
	goalPattern       = regexp.MustCompile(`^meta (\p{L}+) (\d+(?:\.\d+)?)`)
	investmentPattern = regexp.MustCompile(`^investimento (\p{L}+) (\d+(?:\.\d+)?)`)
	budgetPattern     = regexp.MustCompile(`^or[çc]amento (\p{L}+) (\d+(?:\.\d+)?)`)
)

// Respond processes one chat message for a user and always returns a reply.
// Precedence: explicit command verbs, then numeric calculations, then the
// ajuda/resumo/dica keywords, then the model or a canned topic reply.
func (a *Advisor) Respond(ctx context.Context, userID uint, message string) string {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return msgNotUnderstood
	}

	if reply, handled := a.handleCommand(userID, lower); handled {
		return reply
	}

	if calc, clarification, handled := Interpret(lower); handled {
		if calc != nil {
			return ComposeCalculation(calc)
		}
		return clarification
	}

	switch {
	case strings.Contains(lower, "ajuda"):
		return helpText
	case strings.Contains(lower, "resumo"):
		snap, err := BuildSnapshot(a.gateway, userID, a.now())
		if err != nil {
			logger.Get().Warnw("snapshot failed", "user_id", userID, "error", err)
			return "Não consegui montar seu resumo agora. Tente novamente em instantes."
		}
		return snap.Summary()
	case strings.Contains(lower, "dica"):
		return "💡 " + financialTips[rand.Intn(len(financialTips))]
	}

	if a.opts.GeminiAPIKey != "" {
		if reply, err := a.modelReply(ctx, userID, message); err == nil {
			return reply
		} else {
			logger.Get().Warnw("model reply failed, using canned response", "error", err)
		}
	}

	return ComposeTopic(Classify(lower))
}

// handleCommand matches the explicit recording verbs. Failures come back as
// apologetic strings, never as errors.
func (a *Advisor) handleCommand(userID uint, lower string) (string, bool) {
	if m := expensePattern.FindStringSubmatch(lower); m != nil {
		return a.recordTransaction(userID, models.TransactionKindExpense, m[2], m[1], "Despesa em "+m[2],
			"Despesa de %s em %s registrada com sucesso!", "Erro ao registrar despesa."), true
	}
	if m := incomePattern.FindStringSubmatch(lower); m != nil {
		return a.recordTransaction(userID, models.TransactionKindIncome, m[2], m[1], "Receita de "+m[2],
			"Receita de %s em %s registrada com sucesso!", "Erro ao registrar receita."), true
	}
	if m := investmentPattern.FindStringSubmatch(lower); m != nil {
		return a.recordTransaction(userID, models.TransactionKindInvestment, m[1], m[2], "Investimento em "+m[1],
			"Investimento de %s em %s registrado com sucesso!", "Erro ao registrar investimento."), true
	}
	if m := goalPattern.FindStringSubmatch(lower); m != nil {
		target := toCents(parseToken(m[2]))
		if _, err := a.goals.CreateGoal(userID, m[1], target, nil); err != nil {
			logger.Get().Warnw("goal command failed", "user_id", userID, "error", err)
			return "Erro ao definir meta.", true
		}
		return "Meta '" + m[1] + "' com valor de " + formatBRL(parseToken(m[2])) + " definida com sucesso!", true
	}
	if m := budgetPattern.FindStringSubmatch(lower); m != nil {
		value := parseToken(m[2])
		now := a.now()
		if _, err := a.budgets.SetBudget(userID, m[1], toCents(value), int(now.Month()), now.Year()); err != nil {
			logger.Get().Warnw("budget command failed", "user_id", userID, "error", err)
			return "Erro ao definir orçamento.", true
		}
		return fmt.Sprintf("Orçamento de %s para %s definido com sucesso!", formatBRL(value), m[1]), true
	}

	return "", false
}

func (a *Advisor) recordTransaction(userID uint, kind models.TransactionKind, category, amountToken, description, successFmt, failureMsg string) string {
	value := parseToken(amountToken)
	_, err := a.transactions.CreateTransaction(userID, kind, category, "", toCents(value), description, a.now())
	if err != nil {
		logger.Get().Warnw("chat transaction command failed",
			"user_id", userID, "kind", kind, "error", err)
		return failureMsg
	}
	return fmt.Sprintf(successFmt, formatBRL(value), category)
}

// modelReply builds the snapshot context and asks the Gemini model. The
// snapshot is optional: when the gateway fails the model still answers,
// just without personalized figures.
func (a *Advisor) modelReply(ctx context.Context, userID uint, message string) (string, error) {
	contextBlock := "Dados financeiros não disponíveis."
	if snap, err := BuildSnapshot(a.gateway, userID, a.now()); err == nil {
		contextBlock = snap.ContextBlock()
	}

	client, err := newGeminiClient(ctx, a.opts.GeminiAPIKey, a.opts.GeminiModel)
	if err != nil {
		return "", err
	}
	return client.Generate(ctx, contextBlock, message)
}

// toCents converts a currency value parsed from text to stored cents.
func toCents(value float64) int64 {
	return int64(math.Round(value * 100))
}
