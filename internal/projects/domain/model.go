package domain

// ProjectRecord is a single web-development order. It is intentionally
// storage-agnostic and used across repository, store client and table layers.
//
// The id is assigned on the client when the record is first created and is
// never mutated afterwards. WaktuInput is stamped once at creation time.
type ProjectRecord struct {
	ID         string `json:"id" form:"id"`
	Name       string `json:"name" form:"name"`
	Category   string `json:"category" form:"category"`
	Konsep     string `json:"konsep" form:"konsep"`
	Status     string `json:"status" form:"status"`
	Payment    string `json:"payment" form:"payment"`
	Nominal    string `json:"nominal" form:"nominal"`
	WaktuInput string `json:"waktu_input" form:"waktu_input"`
}

type Category string

const (
	CategoryWebApp         Category = "Aplikasi Web"
	CategoryCompanyProfile Category = "Company Profile"
	CategoryStaticWeb      Category = "Web Statis"
	CategoryInvitation     Category = "Undangan Digital"
	CategoryLandingPage    Category = "Landing Page"
)

type Status string

const (
	StatusComingSoon Status = "Coming soon"
	StatusInProgress Status = "In progress / Sudah dp"
	StatusDone       Status = "Done / Sudah Lunas"
)

type Payment string

const (
	PaymentBRI  Payment = "Transfer | BRI"
	PaymentDana Payment = "Transfer | Dana"
	PaymentNone Payment = "-"
)

// Categories lists the closed category set in form-option order.
func Categories() []Category {
	return []Category{
		CategoryWebApp,
		CategoryCompanyProfile,
		CategoryStaticWeb,
		CategoryInvitation,
		CategoryLandingPage,
	}
}

// Statuses lists the closed status set in form-option order.
func Statuses() []Status {
	return []Status{StatusComingSoon, StatusInProgress, StatusDone}
}

// Payments lists the closed payment set in form-option order.
func Payments() []Payment {
	return []Payment{PaymentBRI, PaymentDana, PaymentNone}
}

// Known reports whether the stored value is a member of the closed set.
// Unknown values are rendered unstyled but never rejected.
func (c Category) Known() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

func (s Status) Known() bool {
	for _, v := range Statuses() {
		if s == v {
			return true
		}
	}
	return false
}

func (p Payment) Known() bool {
	for _, v := range Payments() {
		if p == v {
			return true
		}
	}
	return false
}

// NewRecord returns an empty record with every enum field set to its
// default (first) form option.
func NewRecord() ProjectRecord {
	return ProjectRecord{
		Category: string(CategoryWebApp),
		Status:   string(StatusComingSoon),
		Payment:  string(PaymentNone),
	}
}
