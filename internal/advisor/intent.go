package advisor

import "strings"

// Intent is the classified topic of a free-text financial question.
type Intent string

const (
	IntentEconomy          Intent = "economy"
	IntentInvestment       Intent = "investment"
	IntentDebt             Intent = "debt"
	IntentGoals            Intent = "goals"
	IntentBudget           Intent = "budget"
	IntentRetirement       Intent = "retirement"
	IntentEducation        Intent = "education"
	IntentTax              Intent = "tax"
	IntentEntrepreneurship Intent = "entrepreneurship"
	IntentRealEstate       Intent = "real_estate"
	IntentCalculation      Intent = "calculation"
	IntentGeneric          Intent = "generic"
)

// intentRule pairs an intent with the tokens that select it. Rules are
// evaluated in slice order and the first hit wins; ties are broken by list
// position, not match quality.
type intentRule struct {
	intent Intent
	tokens []string
}

// phraseRules match multi-word colloquial phrasings and run before the
// single-keyword pass, mirroring how people actually ask these questions.
var phraseRules = []intentRule{
	{IntentEconomy, []string{
		"como gastar menos", "reduzir despesas", "diminuir gastos", "cortar custos",
		"economizar dinheiro", "poupar mais", "guardar dinheiro", "juntar dinheiro",
		"fazer sobrar", "sobra no final do mês", "sobra no fim do mês",
		"dinheiro sobrando", "salário sobrando", "salario sobrando",
	}},
	{IntentInvestment, []string{
		"onde colocar dinheiro", "onde aplicar dinheiro", "melhor investimento",
		"investimento seguro", "investimento que rende", "aplicação que rende",
		"onde investir melhor", "melhor lugar para investir", "aplicação segura",
		"maior retorno", "mais lucrativo",
	}},
	{IntentDebt, []string{
		"sair do vermelho", "sair do buraco", "sair do sufoco", "sair da dívida",
		"pagar cartão", "quitar cartão", "zerar cartão", "limpar nome",
		"limpar spc", "limpar serasa", "nome limpo", "nome sujo",
		"cheque especial", "limite estourado",
	}},
	{IntentGoals, []string{
		"conseguir comprar", "ter dinheiro para", "juntar para comprar",
		"economizar para", "poupar para", "guardar para",
		"realizar sonho", "concretizar sonho", "alcançar objetivo",
	}},
	{IntentBudget, []string{
		"controlar dinheiro", "organizar finanças", "organizar dinheiro",
		"administrar gastos", "gerenciar dinheiro", "planejar gastos",
		"fazer orçamento", "criar orçamento", "montar orçamento",
		"acompanhar gastos", "monitorar gastos", "acompanhar despesas",
	}},
}

// keywordRules are the single-token pass. Order matters: "poupança" sits in
// both the economy and investment vocabularies, and the economy rule wins
// because it comes first.
var keywordRules = []intentRule{
	{IntentEconomy, []string{
		"economizar", "economia", "gastar menos", "gastos", "gasto",
		"poupar", "poupança", "poupanca", "cortar gastos", "reduzir gastos",
		"como guardar", "supermercado", "mercado", "preço", "preços",
		"barato", "desconto", "cupom", "promoção", "oferta",
	}},
	{IntentInvestment, []string{
		"investir", "investimento", "investimentos", "investidor",
		"renda fixa", "renda variável", "renda variavel",
		"ações", "acoes", "bolsa", "fundo", "fundos", "fii",
		"tesouro", "selic", "cdb", "lci", "lca", "debênture", "debenture",
		"criptomoeda", "bitcoin", "ethereum",
		"aplicar dinheiro", "aplicação", "aplicações", "onde aplicar",
		"rendimento", "rentabilidade", "carteira", "diversificar",
		"conservador", "moderado", "agressivo", "risco",
	}},
	{IntentDebt, []string{
		"dívida", "divida", "dívidas", "dividas", "devendo", "endividado",
		"negativo", "no vermelho", "vermelho",
		"cartão", "cartao", "cheque especial", "empréstimo", "emprestimo",
		"parcela", "parcelado", "juros altos", "quitar", "renegociar",
		"consolidar", "spc", "serasa", "protesto", "protestado",
	}},
	{IntentGoals, []string{
		"meta", "metas", "objetivo", "objetivos", "sonho", "sonhos",
		"alcançar", "atingir", "comprar", "adquirir", "realizar",
		"plano", "planos", "projeto", "futuro",
		"carro", "casa própria", "viagem", "viajar", "férias", "ferias",
		"casamento", "filho", "filhos", "família", "familia",
		"independência financeira", "independencia financeira",
		"liberdade financeira", "reserva", "fundo de emergência", "fundo de emergencia",
	}},
	{IntentBudget, []string{
		"orçamento", "orcamento", "budget", "controle", "controlar",
		"planejamento", "planejar", "organizar", "gerenciar", "administrar",
		"receitas", "receita", "renda", "salário", "salario",
		"despesas", "despesa", "balanço", "balanco", "saldo",
		"planilha", "categoria", "categorias", "limite de gastos",
	}},
	{IntentRetirement, []string{
		"aposentadoria", "aposentar", "aposentado", "longo prazo",
		"pensão", "pensao", "inss", "previdência", "previdencia",
		"pgbl", "vgbl",
	}},
	{IntentEducation, []string{
		"educação", "educacao", "aprender", "curso", "estudar", "conhecimento",
	}},
	{IntentTax, []string{
		"imposto", "impostos", "imposto de renda", "tributo", "tributação",
		"tributacao", "receita federal", "declaração", "declaracao", "declarar",
		"dedução", "deducao", "isenção", "isencao", "isento",
		"alíquota", "aliquota", "restituição", "restituicao", "carnê-leão",
	}},
	{IntentEntrepreneurship, []string{
		"empreendedor", "negócio", "negocio", "empresa", "renda extra", "freelance",
	}},
	{IntentRealEstate, []string{
		"imóvel", "imovel", "comprar casa", "financiamento", "patrimônio", "patrimonio",
	}},
	{IntentCalculation, []string{
		"calcular", "cálculo", "calculo", "quanto custa", "quanto preciso",
		"quanto vale", "prestação", "prestacao", "parcelas",
		"juros", "taxa", "taxas", "juros compostos",
		"financiamentos", "simular", "simulação", "simulacao",
	}},
}

// Classify lower-cases the message and returns the first intent whose
// phrase or keyword list matches. The phrase pass runs first; when nothing
// matches the result is IntentGeneric.
func Classify(message string) Intent {
	lower := strings.ToLower(message)

	for _, rule := range phraseRules {
		for _, phrase := range rule.tokens {
			if strings.Contains(lower, phrase) {
				return rule.intent
			}
		}
	}

	for _, rule := range keywordRules {
		for _, token := range rule.tokens {
			if strings.Contains(lower, token) {
				return rule.intent
			}
		}
	}

	return IntentGeneric
}
