package recipe

import "github.com/hammamikhairi/cozinhamestre/internal/domain"

// DefaultCategories returns the fixed category list in display order, with
// zero counts. Each call returns a fresh slice.
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{ID: "diarios", Name: "Dia a Dia", Icon: "🥘"},
		{ID: "sopas", Name: "Sopas & Entradas", Icon: "🥣"},
		{ID: "doces", Name: "Doces Caseiros", Icon: "🍮"},
		{ID: "vegan", Name: "Vegetariano", Icon: "🥬"},
		{ID: domain.QuickCategoryID, Name: "Rápidas", Icon: "⚡"},
	}
}

// categoryDraw maps a uniform draw in [0,1) to a category id. The bounds
// are cumulative: 15% sopas, 15% doces, 15% vegan, 10% rapidas, rest diarios.
var categoryDraw = []struct {
	below float64
	id    string
}{
	{0.15, "sopas"},
	{0.30, "doces"},
	{0.45, "vegan"},
	{0.55, domain.QuickCategoryID},
	{1.01, "diarios"},
}

var chefs = []string{
	"Avó Maria", "Tia Joana", "Chef Carlos", "Dona Rosa", "Sr. António",
	"Chef Miguel", "Clara de Sousa", "Chef Rui", "A Vossa Vizinha",
}

var titles = map[string][]string{
	"diarios": {
		"Arroz de Pato à Antiga", "Bacalhau com Natas da Avó", "Carne de Porco à Alentejana",
		"Feijoada à Transmontana", "Frango Assado com Limão e Tomilho", "Bitoque com Molho de Cerveja",
		"Lulas Estufadas com Batata", "Jardineira de Vitela Tenra", "Massa à Lavrador",
		"Dourada Grelhada com Molho Verde", "Arroz de Tamboril Malandrinho", "Costeletas de Porco Panadas",
		"Rancho à Moda de Viseu", "Empadão de Carne Caseiro", "Bifes de Peru com Cogumelos",
		"Pataniscas de Bacalhau com Arroz de Feijão", "Açorda Alentejana com Ovo Escalfado",
		"Massada de Peixe Rico", "Coelho à Caçador", "Arroz de Cabidela", "Lombo de Porco Assado com Castanhas",
	},
	"sopas": {
		"Caldo Verde com Chouriço Caseiro", "Sopa da Pedra Original", "Creme Aveludado de Legumes",
		"Sopa de Cação à Alentejana", "Canja de Galinha do Campo", "Sopa de Feijão com Couve Lombarda",
		"Gaspacho à Alentejana", "Creme de Abóbora Assada com Especiarias", "Sopa de Peixe da Costa",
		"Aveludado de Agrião", "Sopa de Grão com Espinafres",
	},
	"doces": {
		"Arroz Doce Cremoso", "Leite Creme Queimado", "Bolo de Bolacha Tradicional",
		"Pudim Abade de Priscos", "Mousse de Chocolate (A Melhor do Mundo)", "Farófias com Creme Inglês",
		"Tarte de Amêndoa Caramelizada", "Bolo de Laranja Húmido", "Sericaia com Ameixa de Elvas",
		"Pastel de Nata Caseiro", "Baba de Camelo", "Salame de Chocolate Crocante",
	},
	"vegan": {
		"Caril de Grão e Espinafres", "Feijoada de Cogumelos Selvagens", "Hambúrguer de Feijão Preto e Aveia",
		"Bolognesa de Lentilhas Ricas", "Tofu à Lagareiro", "Strogonoff de Seitan Cremoso",
		"Arroz de Legumes da Horta", "Moqueca de Palmito", "Salada de Quinoa e Abacate",
		"Risoto de Cogumelos e Espargos",
	},
	domain.QuickCategoryID: {
		"Omelete Mista com Ervas", "Massa Carbonara (A Original)", "Bifes de Frango Grelhados",
		"Salada Caesar com Frango Crocante", "Tostas de Abacate e Ovo", "Wrap de Atum e Milho",
		"Salmão Grelhado com Legumes Salteados", "Ovos Mexidos com Farinheira", "Pimentos Padrón Salteados",
	},
}

// qualifiers are appended to every title from index plainTitleLimit on.
var qualifiers = []string{"Especial", "da Casa", "Rústico", "Simples", "com Toque do Chef", "Tradicional"}

const plainTitleLimit = 60

var intros = []string{
	"Esta receita está na minha família há gerações.",
	"O segredo deste prato está no tempo que se dedica ao refogado.",
	"Perfeito para aqueles dias em que precisamos de comida de conforto.",
	"Uma versão simplificada de um clássico, sem perder o sabor autêntico.",
	"O cheirinho que deixa na cozinha vai chamar toda a gente para a mesa.",
	"Aprendi este truque com um chef no Alentejo.",
	"Ideal para o almoço de domingo com a família reunida.",
}

var flavors = []string{
	"O molho fica espesso e rico, ideal para molhar o pão.",
	"A carne desfaz-se na boca de tão tenra.",
	"O contraste entre o crocante e o cremoso é divinal.",
	"Tem aquele sabor caseiro que nos transporta para a infância.",
	"Fica ainda melhor no dia seguinte, quando os sabores apuram.",
	"Leve, fresco e cheio de sabor.",
}

var equipment = []string{"Tacho de Barro", "Colher de Pau", "Faca de Chef"}

var chefTips = []string{
	"A qualidade do azeite faz toda a diferença neste prato.",
	"Se sobrar, guarde no frigorífico; fica ainda melhor no dia seguinte.",
	"Acompanhe com um bom vinho tinto ou pão fresco.",
}

var extraTags = []string{"Conforto", "Tradicional", "Caseiro"}
