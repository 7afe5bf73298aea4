package catalog

// BatchOperationDef describes a purchasable bulk-debugging run: one payment
// of CQ processes batchSize bugs at the listed efficiency.
type BatchOperationDef struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CodeType    CodeType `json:"code_type"`
	BatchSize   int      `json:"batch_size"`
	Efficiency  float64  `json:"efficiency"`
	Cost        int64    `json:"cost"`
	Unlock      Unlock   `json:"unlock"`
}

var batchOperations = []BatchOperationDef{
	{
		ID: "web-batch-basic", Name: "Web Bug Sweep",
		Description: "Process multiple web development bugs simultaneously",
		CodeType:    CodeWeb, BatchSize: 5, Efficiency: 1.2, Cost: 500,
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 200},
	},
	{
		ID: "web-batch-advanced", Name: "Full Stack Analysis",
		Description: "Comprehensive web application debugging",
		CodeType:    CodeWeb, BatchSize: 10, Efficiency: 1.5, Cost: 1500,
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 1000},
	},
	{
		ID: "mobile-batch-basic", Name: "Mobile Bug Hunt",
		Description: "Batch processing for mobile app issues",
		CodeType:    CodeMobile, BatchSize: 3, Efficiency: 1.4, Cost: 800,
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 600},
	},
	{
		ID: "mobile-batch-advanced", Name: "Cross-Platform Debug",
		Description: "Debug issues across iOS and Android",
		CodeType:    CodeMobile, BatchSize: 8, Efficiency: 1.8, Cost: 2000,
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 2000},
	},
	{
		ID: "backend-batch-basic", Name: "Server-Side Sweep",
		Description: "Batch process backend infrastructure bugs",
		CodeType:    CodeBackend, BatchSize: 4, Efficiency: 1.3, Cost: 700,
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 400},
	},
	{
		ID: "backend-batch-advanced", Name: "System-Wide Analysis",
		Description: "Comprehensive backend system debugging",
		CodeType:    CodeBackend, BatchSize: 12, Efficiency: 1.6, Cost: 2500,
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 1500},
	},
	{
		ID: "aiml-batch-basic", Name: "ML Model Debug",
		Description: "Batch process machine learning bugs",
		CodeType:    CodeAIML, BatchSize: 2, Efficiency: 1.8, Cost: 1200,
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 3000},
	},
	{
		ID: "aiml-batch-advanced", Name: "AI System Optimization",
		Description: "Advanced AI/ML debugging and optimization",
		CodeType:    CodeAIML, BatchSize: 6, Efficiency: 2.2, Cost: 4000,
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 8000},
	},
}

// BatchOperations returns the batch-operation catalog.
func BatchOperations() []BatchOperationDef {
	out := make([]BatchOperationDef, len(batchOperations))
	copy(out, batchOperations)
	return out
}

// BatchOperationByID looks up one batch operation.
func BatchOperationByID(id string) (BatchOperationDef, bool) {
	for _, b := range batchOperations {
		if b.ID == id {
			return b, true
		}
	}
	return BatchOperationDef{}, false
}

// BatchEfficiency scales an operation's efficiency by the average specialty
// bonus of the assigned ducks, capped so stacked specialists cannot run away.
func BatchEfficiency(op BatchOperationDef, specialtyBonuses []float64) float64 {
	if len(specialtyBonuses) == 0 {
		return op.Efficiency
	}
	sum := 0.0
	for _, b := range specialtyBonuses {
		sum += b
	}
	avg := sum / float64(len(specialtyBonuses))
	if avg > 2.5 {
		avg = 2.5
	}
	return op.Efficiency * avg
}
