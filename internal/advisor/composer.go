package advisor

import (
	"fmt"
	"strings"
)

// Clarification and fallback strings. The engine never returns an error to
// its caller; one of these goes out instead.
const (
	msgNeedValues = "Para calcular, preciso dos valores! Exemplo: 'Quanto preciso poupar por mês para ter R$ 50000 em 2 anos?'"

	msgNeedCalcKind = "Consegui identificar os números, mas preciso entender melhor o tipo de cálculo. Pode ser mais específico?"

	msgCalcFailed = "Desculpe, houve um erro no cálculo. Verifique se os valores estão corretos."

	msgNotUnderstood = "Desculpe, não entendi. Digite 'ajuda' para ver as opções disponíveis."
)

// formatBRL renders an amount as "R$ 1,234,567.89" with comma thousands
// grouping on the integer part.
func formatBRL(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	intPart, fracPart, _ := strings.Cut(s, ".")

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return "R$ " + sign + grouped.String() + "." + fracPart
}

// ComposeCalculation renders a computed calculation as a chat reply: the
// interpreted inputs echoed back, the result, and a fixed set of tips for
// the calculation kind. It never fails; an unknown kind gets the standard
// fallback string.
func ComposeCalculation(calc *Calculation) string {
	if calc == nil {
		return msgCalcFailed
	}

	switch calc.Kind {
	case CalcSavingsGoal:
		return fmt.Sprintf(`💰 **Cálculo de Poupança:**

**Meta:** %s
**Tempo:** %.0f anos
**Investimento mensal necessário:** %s

**💡 Dicas:**
• Automatize o investimento mensal
• Use investimentos com rendimento de 8-12%% ao ano
• Revise anualmente e ajuste conforme necessário

**Alternativas:**
• Aumentar o prazo reduz o valor mensal
• Começar com menos e aumentar gradualmente
• Buscar renda extra para acelerar o processo`,
			formatBRL(calc.Goal), calc.Years, formatBRL(calc.MonthlyNeeded))

	case CalcFinancing:
		totalPaid := calc.Result * calc.Years * 12
		totalInterest := totalPaid - calc.Principal
		return fmt.Sprintf(`🏠 **Cálculo de Financiamento:**

**Valor financiado:** %s
**Taxa de juros:** %.2f%% ao ano
**Prazo:** %.0f anos

**📊 Resultado:**
• **Prestação mensal:** %s
• **Total a pagar:** %s
• **Total de juros:** %s

**💡 Dicas:**
• Compare ofertas de pelo menos 3 bancos
• Negocie a taxa de juros
• Considere antecipar parcelas para economizar juros
• Avalie se a prestação não compromete mais de 30%% da renda`,
			formatBRL(calc.Principal), calc.RatePct, calc.Years,
			formatBRL(calc.Result), formatBRL(totalPaid), formatBRL(totalInterest))

	case CalcInvestment:
		totalInvested := calc.Principal + calc.Monthly*calc.Years*12
		profit := calc.Result - totalInvested
		yieldPct := 0.0
		if totalInvested > 0 {
			yieldPct = profit / totalInvested * 100
		}
		return fmt.Sprintf(`📈 **Cálculo de Investimento:**

**Investimento inicial:** %s
**Contribuição mensal:** %s
**Taxa de retorno:** %.2f%% ao ano
**Tempo:** %.0f anos

**💰 Resultado:**
• **Valor final:** %s
• **Total investido:** %s
• **Lucro obtido:** %s
• **Rendimento total:** %.1f%%

**💡 O poder dos juros compostos:**
• Quanto mais tempo, maior o crescimento
• Contribuições regulares aceleram o crescimento
• Começar cedo é a chave do sucesso!`,
			formatBRL(calc.Principal), formatBRL(calc.Monthly), calc.RatePct, calc.Years,
			formatBRL(calc.Result), formatBRL(totalInvested), formatBRL(profit), yieldPct)

	case CalcRetirement:
		return fmt.Sprintf(`👴 **Cálculo de Aposentadoria:**

**Gastos anuais atuais:** %s
**Anos para aposentadoria:** %.0f anos

**🎯 Necessário para aposentadoria:**
• **Valor total necessário:** %s
• **Poupança mensal necessária:** %s
• **Regra dos 25x:** 25 vezes seus gastos anuais

**💡 Estratégias:**
• Comece com menos e aumente gradualmente
• Use investimentos de longo prazo (ações, FIIs)
• Considere previdência privada (PGBL/VGBL)
• Revise anualmente e ajuste conforme necessário`,
			formatBRL(calc.Principal), calc.Years,
			formatBRL(calc.Result), formatBRL(calc.MonthlyNeeded))
	}

	return msgCalcFailed
}
