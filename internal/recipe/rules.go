package recipe

import (
	"strings"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
)

// Rules are evaluated once per record, top to bottom. Each rule pairs a
// predicate over the dish with an effect; nothing else decides the shape
// of the generated ingredients, steps, or times.

// dish is what the rules look at.
type dish struct {
	Title    string // display title, case preserved
	Base     string // base title, lowercased
	Category string // category id
}

// Match is a predicate over a dish.
type Match func(d dish) bool

// titleHas matches when the display title contains any word, case-sensitive.
func titleHas(words ...string) Match {
	return func(d dish) bool { return containsAny(d.Title, words) }
}

// baseHas matches when the lowercased base title contains any word.
func baseHas(words ...string) Match {
	return func(d dish) bool { return containsAny(d.Base, words) }
}

func inCategory(id string) Match {
	return func(d dish) bool { return d.Category == id }
}

func always(dish) bool { return true }

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// ── Times ────────────────────────────────────────────────────────

const (
	defaultPrep = 20
	defaultCook = 30
)

// TimeRule sets prep and/or cook minutes when it matches. Zero leaves the
// current value alone. Later rules win.
type TimeRule struct {
	Name string
	When Match
	Prep int
	Cook int
}

var timeRules = []TimeRule{
	{Name: "roast", When: titleHas("Assado", "Forno"), Cook: 55},
	{Name: "stew", When: titleHas("Estufado", "Feijoada"), Cook: 70},
	{Name: "sweet", When: titleHas("Doce", "Bolo"), Cook: 45},
	{Name: "quick", When: inCategory(domain.QuickCategoryID), Prep: 10, Cook: 10},
}

func applyTimes(rules []TimeRule, d dish) (prep, cook int) {
	prep, cook = defaultPrep, defaultCook
	for _, r := range rules {
		if !r.When(d) {
			continue
		}
		if r.Prep > 0 {
			prep = r.Prep
		}
		if r.Cook > 0 {
			cook = r.Cook
		}
	}
	return prep, cook
}

// difficultyFor thresholds total time. Hard is never produced.
func difficultyFor(total int) domain.Difficulty {
	if total > 60 {
		return domain.DifficultyMedium
	}
	return domain.DifficultyEasy
}

// ── Ingredients ──────────────────────────────────────────────────

// IngredientRule appends Add when it matches. A rule with Replace set
// swaps the whole list instead and ends evaluation.
type IngredientRule struct {
	Name    string
	When    Match
	Add     []domain.Ingredient
	Replace []domain.Ingredient
}

var baseIngredients = []domain.Ingredient{
	{Item: "Azeite Virgem Extra", Quantity: "um fio generoso"},
	{Item: "Cebola", Quantity: "1 grande", Note: "picada finamente"},
	{Item: "Alho", Quantity: "3 dentes", Note: "esmagados"},
	{Item: "Sal Marinho", Quantity: "a gosto"},
	{Item: "Pimenta Preta", Quantity: "moída na hora"},
	{Item: "Folha de Louro", Quantity: "1 unidade"},
}

var dessertIngredients = []domain.Ingredient{
	{Item: "Açúcar", Quantity: "250g"},
	{Item: "Ovos Caseiros", Quantity: "6 unidades"},
	{Item: "Farinha com Fermento", Quantity: "200g"},
	{Item: "Manteiga", Quantity: "100g", Note: "à temperatura ambiente"},
	{Item: "Canela em Pó", Quantity: "a gosto"},
	{Item: "Raspa de Limão", Quantity: "1 unidade"},
}

func add(item, qty, note string) []domain.Ingredient {
	return []domain.Ingredient{{Item: item, Quantity: qty, Note: note}}
}

var isDessert = baseHas("doce", "bolo", "pudim")

var ingredientRules = []IngredientRule{
	{Name: "bacalhau", When: baseHas("bacalhau"), Add: add("Bacalhau Graúdo", "3 postas", "bem demolhado")},
	{Name: "pato", When: baseHas("pato"), Add: add("Pato", "metade", "limpo de gorduras")},
	{Name: "frango", When: baseHas("frango", "galinha"), Add: add("Frango do Campo", "1 kg", "cortado em pedaços")},
	{Name: "porco", When: baseHas("porco", "bifana"), Add: add("Carne de Porco", "800g", "cortada em cubos")},
	{Name: "vitela", When: baseHas("vitela"), Add: add("Carne de Vitela para Estufar", "800g", "")},
	{Name: "lulas", When: baseHas("lulas"), Add: add("Lulas Frescas", "1 kg", "limpas")},
	{Name: "arroz", When: baseHas("arroz"), Add: add("Arroz Carolino", "1 caneca", "")},
	{Name: "natas", When: baseHas("natas"), Add: add("Natas Frescas", "2 pacotes", "")},
	{Name: "tomate", When: baseHas("tomate", "bolonhesa"), Add: add("Tomate Maduro", "4 unidades", "sem pele")},
	{Name: "feijao", When: baseHas("feijão"), Add: add("Feijão", "1 lata grande", "com o caldo")},
	{Name: "vinho", When: baseHas("vinho"), Add: add("Vinho Branco", "1 copo", "")},
	{Name: "dessert", When: isDessert, Replace: dessertIngredients},
	{Name: "herbs", When: always, Add: add("Salsa ou Coentros", "1 ramo", "frescos")},
}

func applyIngredients(rules []IngredientRule, d dish) []domain.Ingredient {
	list := append([]domain.Ingredient(nil), baseIngredients...)
	for _, r := range rules {
		if !r.When(d) {
			continue
		}
		if r.Replace != nil {
			return append([]domain.Ingredient(nil), r.Replace...)
		}
		list = append(list, r.Add...)
	}
	return list
}

// ── Steps ────────────────────────────────────────────────────────

// StepRule contributes Steps when it matches. Within a StepGroup only the
// first matching rule contributes.
type StepRule struct {
	Name  string
	When  Match
	Steps []domain.InstructionStep
}

// StepGroup is one phase of the method (prep, cooking base, finish).
type StepGroup []StepRule

func step(instruction, estimated, tip string) domain.InstructionStep {
	return domain.InstructionStep{Instruction: instruction, EstimatedTime: estimated, Tip: tip}
}

var stepGroups = []StepGroup{
	{
		{Name: "oven-prep", When: baseHas("doce", "bolo"), Steps: []domain.InstructionStep{
			step("Comece por pré-aquecer o forno a 180ºC e untar a forma com manteiga e farinha.", "10 min", ""),
		}},
		{Name: "mise-en-place", When: always, Steps: []domain.InstructionStep{
			step(`Faça o "Mise en place": pique a cebola e os alhos, corte os legumes e tempere a proteína com sal, pimenta e alho.`, "15 min", ""),
		}},
	},
	{
		{Name: "stew", When: baseHas("estufado", "arroz", "feijoada", "jardineira"), Steps: []domain.InstructionStep{
			step(`Num tacho largo, faça um refogado generoso com o azeite, cebola e folha de louro. Deixe a cebola "suar" até ficar translúcida, sem queimar.`, "10 min", "O segredo de um bom estufado é a paciência no refogado."),
			step("Junte a carne ou ingrediente principal e deixe selar de todos os lados para prender os sucos. Refresque com um pouco de vinho branco.", "10 min", ""),
			step("Adicione o líquido (água quente ou caldo), tape e deixe cozinhar em lume brando até a carne estar tenra e o molho apurado.", "45 min", ""),
		}},
		{Name: "roast", When: baseHas("assado", "forno"), Steps: []domain.InstructionStep{
			step("Disponha tudo num tabuleiro de barro ou pirex. Regue com azeite, vinho branco e espalhe uns cubos de margarina por cima para dar cor.", "5 min", ""),
			step("Leve ao forno. A meio do tempo, regue a carne com o próprio molho do tabuleiro para não secar.", "50 min", ""),
		}},
		{Name: "grill", When: baseHas("grelhado"), Steps: []domain.InstructionStep{
			step("Aqueça bem a grelha. Coloque o peixe ou carne apenas quando estiver muito quente para marcar e não agarrar.", "15 min", ""),
		}},
		{Name: "batter", When: baseHas("doce"), Steps: []domain.InstructionStep{
			step("Bata o açúcar com os ovos até obter um creme esbranquiçado e volumoso.", "8 min", ""),
			step("Envolva os restantes ingredientes delicadamente, sem bater demasiado para manter o ar na massa.", "5 min", ""),
		}},
		{Name: "saute", When: always, Steps: []domain.InstructionStep{
			step("Na frigideira, salteie os ingredientes em azeite quente até ganharem cor.", "15 min", ""),
		}},
	},
	{
		{Name: "bake", When: baseHas("doce"), Steps: []domain.InstructionStep{
			step("Leve a cozer, fazendo o teste do palito antes de retirar. Deixe arrefecer antes de desenformar.", "40 min", ""),
		}},
		{Name: "herb-finish", When: always, Steps: []domain.InstructionStep{
			step("Retifique os temperos (sal e pimenta). Desligue o lume e polvilhe com as ervas frescas picadas na hora.", "2 min", "As ervas devem entrar só no fim para não perderem o aroma."),
		}},
	},
}

// applySteps assembles one contribution per group and numbers the result
// 1..n so there are never gaps.
func applySteps(groups []StepGroup, d dish) []domain.InstructionStep {
	var out []domain.InstructionStep
	for _, g := range groups {
		for _, r := range g {
			if r.When(d) {
				out = append(out, r.Steps...)
				break
			}
		}
	}
	for i := range out {
		out[i].Number = i + 1
	}
	return out
}
