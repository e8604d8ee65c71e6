package output

// DefaultAssumptions lists the model's built-in simplifications, rendered in
// detailed outputs when the run carries no scenario-specific assumption lines.
var DefaultAssumptions = []string{
	"Annual return is applied monthly as rate/12 (not compounded-equivalent)",
	"Contributions are made at the start of each month and earn that month's growth",
	"Roth withdrawals are tax-free; Traditional withdrawals taxed per the scenario's tax model",
	"The pre-tax share of current savings is excluded from the Roth projection",
	"Marginal tax rates are flat approximations, not bracket schedules",
	"No inflation adjustment and no contribution limits",
}
