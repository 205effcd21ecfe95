package eda

// Default report parameters
const (
	// DefaultTargetColumn is the binary outcome column used when no target
	// is named at construction. Values are expected to be encoded 0/1.
	DefaultTargetColumn = "loan_status"

	// DefaultMaxLevels caps how many levels CategoricalFreqs reports per column
	DefaultMaxLevels = 10

	// DefaultBuckets is the quantile bucket count for DefaultRateByBucket
	DefaultBuckets = 4
)

// BorrowerColumns is the fixed universe of borrower-identity and loan-purpose
// columns the BorrowerProfile reports inspect, in report order.
var BorrowerColumns = []string{
	"id", "member_id",
	"emp_title", "emp_length",
	"home_ownership",
	"annual_inc", "annual_inc_joint",
	"verification_status", "verification_status_joint",
	"zip_code", "addr_state",
	"purpose", "title", "desc",
	"issue_d", "pymnt_plan", "policy_code",
	"url",
}

// IncomeColumns are the income columns summarized by IncomeSummary.
var IncomeColumns = []string{"annual_inc", "annual_inc_joint"}

// FreqColumns are the categorical borrower columns summarized by
// CategoricalFreqs.
var FreqColumns = []string{"home_ownership", "addr_state", "purpose"}

// CreditNumericColumns is the fixed universe of numeric credit-history
// columns the CreditHistory reports inspect, in report order.
var CreditNumericColumns = []string{
	"dti", "dti_joint",
	"delinq_2yrs",
	"mths_since_last_delinq", "mths_since_last_record", "mths_since_last_major_derog",
	"open_acc", "total_acc", "pub_rec", "acc_now_delinq",
	"revol_bal", "revol_util", "total_rev_hi_lim",
	"tot_coll_amt", "tot_cur_bal", "total_bal_il",
	"open_acc_6m", "open_il_6m", "open_il_12m", "open_il_24m",
	"mths_since_rcnt_il",
	"open_rv_12m", "open_rv_24m",
	"max_bal_bc",
	"all_util",
	"inq_last_6mths", "inq_last_12m", "inq_fi",
	"collections_12_mths_ex_med",
}
