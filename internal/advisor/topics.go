package advisor

// Canned topic replies used when no numeric calculation applies and the
// Gemini model is unavailable. Keyed by intent; IntentGeneric gets the
// help/menu text.

var topicResponses = map[Intent]string{
	IntentEconomy: `Olha, economizar dinheiro não é um bicho de sete cabeças! Vou te dar umas dicas que realmente funcionam:

**Primeiro, vamos organizar sua renda:**
- 50% para o essencial (aluguel, comida, transporte)
- 30% para seus desejos (lazer, roupas)
- 20% para guardar (essa é a parte mais importante!)

**Dicas práticas que funcionam:**
1. Faça lista de compras - sério, isso evita compras desnecessárias
2. Compare preços antes de comprar
3. Espere 1 dia antes de comprar algo que não estava planejado
4. Ligue para suas operadoras (internet, celular) e peça desconto - funciona!
5. Cozinhe mais em casa, delivery é caro demais

**A meta é simples:** tenta guardar pelo menos 20% do que ganha por mês.

Quer que eu veja seus gastos e te ajude a identificar onde dá pra cortar?`,

	IntentInvestment: `Cara, investir não precisa ser complicado! Deixa eu te explicar de um jeito simples:

**Se você está começando (e tem medo de perder dinheiro):**
- Tesouro Selic: 100% seguro, você pode tirar a qualquer hora
- CDB de banco grande: também seguro, rende mais que poupança
- Poupança: só pra emergência mesmo, rende pouco

**Se você já tem uma grana guardada e quer crescer mais:**
- Ações de empresas grandes
- Fundos que espelham a Bolsa
- LCI/LCA: rende bem e não paga imposto

**Se você é mais arrojado e tem estômago forte:**
- Ações individuais
- Fundos Imobiliários (renda mensal)
- Criptomoedas (só um pouquinho, hein!)

**A regra de ouro:** comece devagar, sempre com dinheiro que você pode perder. E invista todo mês, mesmo que seja pouco.

Me conta: você já investe alguma coisa ou está começando do zero?`,

	IntentDebt: `Relaxa, sair do negativo é possível sim! Vamos por partes:

**Primeiro, vamos fazer um diagnóstico:**
- Anota todas as suas dívidas (cartão, empréstimo, cheque especial)
- Olha qual tem o juros mais alto - essa vai ser a prioridade
- Calcula quanto você consegue pagar por mês (seja realista)

**Agora vamos cortar gastos:**
- Cancela assinaturas que não usa
- Para com delivery, cozinha em casa
- Vende coisas que não usa mais

**Terceiro passo - aumentar a renda:**
- Faz uns bicos, freelances
- Pede aumento no trabalho (não custa tentar!)

**Estratégia de pagamento:**
Tem dois jeitos: pagar a dívida com maior juros primeiro (economiza mais) ou a menor dívida primeiro (te motiva mais).

Me fala quanto você deve e qual sua renda mensal que eu te ajudo a fazer um plano específico.`,

	IntentGoals: `Olha, ter metas financeiras é o que separa quem consegue de quem fica no "quero mas não consigo". Vou te ensinar como fazer isso direito:

**Primeiro, defina sua meta de um jeito claro:**
- Não fale "quero um carro", fale "quero um carro de R$ 25.000 em 2 anos"
- Seja realista com o prazo baseado na sua renda

**Tipos de metas que fazem sentido:**
- **Curto prazo (até 1 ano):** viagem, móveis, emergência
- **Médio prazo (1-5 anos):** carro, entrada de casa, curso
- **Longo prazo (5+ anos):** casa própria, aposentadoria

**Como alcançar:**
1. Quebra em pedaços menores: R$ 25.000 em 2 anos = R$ 1.042 por mês
2. Coloca débito automático todo dia 5
3. Acompanha todo mês se tá no caminho certo
4. Se der ruim, ajusta o prazo (não desiste!)

**Dica importante:** sempre tenha uma reserva de emergência primeiro (6 meses de gastos guardados).

Qual seu sonho? Me conta que eu te ajudo a calcular quanto você precisa guardar por mês!`,

	IntentBudget: `Cara, controlar o dinheiro é mais simples do que parece! Deixa eu te explicar como fazer:

**Vamos organizar sua grana assim:**
- 50% pra necessidades (aluguel, comida, transporte)
- 30% pra seus desejos (lazer, roupas, sair)
- 20% pra guardar (essa é a parte mais importante!)

**Como controlar todo mês:**
1. Anota quanto entra (salário, freelances)
2. Lista o que sai fixo (aluguel, contas)
3. Controla o que varia (comida, gasolina, lazer)
4. O que sobrar vai pra poupança

**Dicas que funcionam:**
- Anota TUDO que gasta, até aquele cafezinho de R$ 5
- Separa por categorias e coloca limite por categoria
- Se estourar o limite, para de gastar!

**Sinais de alerta:**
- Cartão de crédito virou 30% da renda
- Não sobra nada no final do mês

Quer que eu te ajude a montar um orçamento que funciona pra você?`,

	IntentRetirement: `👴 **Planejamento para Aposentadoria:**

A regra básica é a dos 25x: você precisa acumular 25 vezes os seus gastos anuais para viver de renda.

**Como começar:**
1. Calcule seus gastos anuais atuais
2. Multiplique por 25 - essa é sua meta de patrimônio
3. Ajuste pela inflação para o ano em que pretende parar
4. Divida pelo prazo para saber quanto poupar por mês

**Onde investir para o longo prazo:**
- Tesouro IPCA+ (protege da inflação)
- Previdência privada (PGBL/VGBL, atenção às taxas)
- Ações e fundos imobiliários para crescimento

Me diga seus gastos anuais e em quantos anos quer se aposentar que eu calculo pra você!`,

	IntentEducation: `📚 **Educação Financeira - Por Onde Começar:**

**Conceitos fundamentais:**
- Juros compostos: seu dinheiro rendendo sobre o rendimento
- Inflação: por que dinheiro parado perde valor
- Diversificação: não coloque tudo no mesmo lugar

**Na prática:**
1. Comece acompanhando seus gastos por 30 dias
2. Monte uma reserva de emergência
3. Só depois pense em investimentos de maior risco

**Hábito vale mais que conhecimento:** 15 minutos por semana revisando suas finanças fazem mais diferença do que qualquer curso.

Sobre qual conceito você quer saber mais?`,

	IntentTax: `🧾 **Impostos e Tributação:**

**Imposto de renda - quem precisa declarar:**
- Rendimentos tributáveis acima do limite anual
- Investimentos na Bolsa ou no exterior
- Bens acima do valor mínimo declarável

**Sobre investimentos:**
- Poupança, LCI e LCA: isentos
- Tesouro e CDB: tabela regressiva (quanto mais tempo, menos imposto)
- Ações: isenção em vendas até R$ 20.000 por mês

**Dicas:**
- Guarde todos os informes de rendimento
- Declare mesmo na dúvida: omitir gera multa
- Deduções de saúde e educação reduzem o imposto devido

Quer ajuda com algum caso específico?`,

	IntentEntrepreneurship: `🚀 **Empreendedorismo e Renda Extra:**

**Para começar sem largar o emprego:**
- Freelances na sua área de especialidade
- Venda de produtos ou serviços nos fins de semana
- Monetize uma habilidade que você já tem

**Antes de investir dinheiro no negócio:**
1. Valide a ideia com clientes reais
2. Separe as contas pessoais das contas do negócio
3. Formalize-se (MEI é simples e barato)
4. Tenha reserva pessoal para 6 meses

**Regra de ouro:** o negócio precisa se pagar; não financie prejuízo com cartão de crédito.

Qual ideia você tem em mente?`,

	IntentRealEstate: `🏠 **Imóveis e Patrimônio:**

**Comprar ou alugar?**
- Compare a prestação com o aluguel + rendimento do valor da entrada
- Financiamento longo pode dobrar o preço do imóvel em juros

**Se for financiar:**
1. Junte a maior entrada possível (mínimo 20%)
2. Compare o CET (custo efetivo total) entre bancos
3. Prestação não deve passar de 30% da renda
4. Considere amortizar com FGTS

**Alternativas de investimento imobiliário:**
- Fundos Imobiliários: renda mensal sem dor de cabeça
- LCI: isenta de imposto de renda

Quer que eu calcule uma simulação de financiamento? Me diga o valor, a taxa e o prazo.`,

	IntentCalculation: `🧮 **Calculadora Financeira FinBot:**

Posso calcular para você:

• **Poupança:** "Quanto preciso poupar por mês para ter 50000 em 2 anos?"
• **Financiamento:** "Qual a prestação de um financiamento de 200000 a 9.5% em 20 anos?"
• **Investimento:** "Quanto rende 10000 a 12% em 5 anos com 500 por mês?"
• **Aposentadoria:** "Preciso de quanto para aposentar com gastos de 60000 em 20 anos?"

Me mande os valores que eu faço as contas!`,
}

// helpText is the generic menu, returned when no intent matches.
const helpText = `👋 **Olá! Sou seu assistente financeiro FinBot!**

Posso te ajudar com:

• **Economia** - dicas para gastar menos e guardar mais
• **Investimentos** - onde e como aplicar seu dinheiro
• **Dívidas** - planos para sair do negativo
• **Metas** - como definir e alcançar objetivos financeiros
• **Orçamento** - controle e planejamento dos gastos
• **Aposentadoria** - planejamento de longo prazo
• **Cálculos** - poupança, financiamento, juros compostos

Comandos rápidos:
- 'resumo': mostra um resumo das suas finanças
- 'despesa 100 alimentação': registra uma despesa
- 'receita 1000 salário': registra uma receita
- 'meta viagem 5000': cria uma meta
- 'orçamento alimentação 1000': define o orçamento do mês
- 'investimento poupança 1000': registra um investimento
- 'dica': mostra uma dica financeira

Sobre o que você quer conversar?`

// financialTips is rotated by the 'dica' command.
var financialTips = []string{
	"Mantenha um controle rigoroso das suas despesas diárias.",
	"Crie um fundo de emergência com 3 a 6 meses de despesas.",
	"Evite compras por impulso, faça um planejamento antes.",
	"Compare preços antes de fazer compras grandes.",
	"Faça um orçamento mensal e siga-o rigorosamente.",
	"Pague suas contas em dia para evitar juros.",
	"Invista em educação financeira.",
	"Diversifique seus investimentos.",
	"Evite dívidas com juros altos.",
}

// ComposeTopic returns the canned reply for an intent, or the help menu
// when the intent is generic or unknown.
func ComposeTopic(intent Intent) string {
	if response, ok := topicResponses[intent]; ok {
		return response
	}
	return helpText
}
