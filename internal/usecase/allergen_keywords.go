package usecase

import "github.com/allergenlens/backend/internal/domain"

// allergenTable is the ordered keyword table; detection output follows this order.
var allergenTable = []domain.AllergenCategory{
	{
		Key:      "소고기",
		English:  "Beef",
		Keywords: []string{"소고기", "쇠고기", "우육", "비프", "등심", "안심"},
	},
	{
		Key:      "돼지고기",
		English:  "Pork",
		Keywords: []string{"돼지고기", "돼지", "포크", "베이컨", "햄", "삼겹살", "목살", "라드"},
	},
	{
		Key:      "우유",
		English:  "Milk & Dairy",
		Keywords: []string{"우유", "유제품", "치즈", "버터", "생크림", "연유", "유당", "유청", "카제인", "분유", "유크림"},
	},
	{
		Key:      "닭",
		English:  "Chicken",
		Keywords: []string{"닭", "치킨", "닭고기", "가금류", "닭가슴살", "닭다리", "닭봉"},
	},
	{
		Key:      "땅콩",
		English:  "Peanut",
		Keywords: []string{"땅콩", "피넛", "땅콩버터"},
	},
	{
		Key:      "계란",
		English:  "Egg",
		Keywords: []string{"계란", "달걀", "난백", "난황", "전란"},
	},
	{
		Key:      "생선",
		English:  "Fish",
		Keywords: []string{"생선", "어류", "참치", "연어", "고등어", "멸치", "어분"},
	},
	{
		Key:      "갑각류",
		English:  "Crustaceans",
		Keywords: []string{"새우", "게", "랍스터", "크랩", "홍게", "킹크랩", "가재", "킹새우"},
	},
}

// AllergenCategories returns a copy of the keyword table
func AllergenCategories() []domain.AllergenCategory {
	out := make([]domain.AllergenCategory, len(allergenTable))
	for i, c := range allergenTable {
		out[i] = domain.AllergenCategory{
			Key:      c.Key,
			English:  c.English,
			Keywords: append([]string(nil), c.Keywords...),
		}
	}
	return out
}
