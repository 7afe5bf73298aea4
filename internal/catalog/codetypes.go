package catalog

// CodeType is the focus-category selector ("current specialization").
type CodeType string

const (
	CodeWeb     CodeType = "web"
	CodeMobile  CodeType = "mobile"
	CodeBackend CodeType = "backend"
	CodeAIML    CodeType = "aiml"
)

// CodeTypeDef describes one focus category.
type CodeTypeDef struct {
	Type            CodeType `json:"type"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	BaseDifficulty  float64  `json:"base_difficulty"`
	SpecialistBonus float64  `json:"specialist_bonus"`
	Unlock          Unlock   `json:"unlock"`
}

var codeTypes = []CodeTypeDef{
	{
		Type:            CodeWeb,
		Name:            "Web Development",
		Description:     "Frontend and web application debugging",
		BaseDifficulty:  1.0,
		SpecialistBonus: 1.5,
		Unlock:          Unlock{Kind: UnlockAlways},
	},
	{
		Type:            CodeMobile,
		Name:            "Mobile Development",
		Description:     "iOS and Android app debugging",
		BaseDifficulty:  1.2,
		SpecialistBonus: 1.6,
		Unlock:          Unlock{Kind: UnlockBugsFixed, Value: 500},
	},
	{
		Type:            CodeBackend,
		Name:            "Backend Development",
		Description:     "Server-side and API debugging",
		BaseDifficulty:  1.3,
		SpecialistBonus: 1.4,
		Unlock:          Unlock{Kind: UnlockBugsFixed, Value: 250},
	},
	{
		Type:            CodeAIML,
		Name:            "AI/ML Development",
		Description:     "Machine learning and AI system debugging",
		BaseDifficulty:  1.5,
		SpecialistBonus: 2.0,
		Unlock:          Unlock{Kind: UnlockBugsFixed, Value: 2500},
	},
}

// crossEfficiency maps a duck's specialty to its efficiency on each focus
// type. Off-specialty work is penalized, never boosted.
var crossEfficiency = map[CodeType]map[CodeType]float64{
	CodeWeb:     {CodeWeb: 1.0, CodeMobile: 0.8, CodeBackend: 0.7, CodeAIML: 0.5},
	CodeMobile:  {CodeWeb: 0.8, CodeMobile: 1.0, CodeBackend: 0.6, CodeAIML: 0.4},
	CodeBackend: {CodeWeb: 0.7, CodeMobile: 0.6, CodeBackend: 1.0, CodeAIML: 0.8},
	CodeAIML:    {CodeWeb: 0.5, CodeMobile: 0.4, CodeBackend: 0.8, CodeAIML: 1.0},
}

// CodeTypes returns the focus-category catalog.
func CodeTypes() []CodeTypeDef {
	out := make([]CodeTypeDef, len(codeTypes))
	copy(out, codeTypes)
	return out
}

// CodeTypeByID looks up one focus-category definition.
func CodeTypeByID(t CodeType) (CodeTypeDef, bool) {
	for _, c := range codeTypes {
		if c.Type == t {
			return c, true
		}
	}
	return CodeTypeDef{}, false
}

// SpecialtyEfficiency returns how effective a duck with the given specialty
// is when the session focus is the given code type. Ducks without a
// specialty work at base efficiency; on-specialty ducks earn the focus
// type's specialist bonus.
func SpecialtyEfficiency(specialty CodeType, focus CodeType) float64 {
	if specialty == "" {
		return 1.0
	}
	if specialty == focus {
		if def, ok := CodeTypeByID(focus); ok {
			return def.SpecialistBonus
		}
		return 1.0
	}
	if row, ok := crossEfficiency[specialty]; ok {
		if v, ok := row[focus]; ok {
			return v
		}
	}
	return 0.5
}
