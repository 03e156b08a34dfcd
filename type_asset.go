package bondplan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Region is a coarse market-region code ("eurozone", "us", ...). An empty
// region is treated as Global by every lookup.
type Region string

const (
	Eurozone    Region = "eurozone"
	US          Region = "us"
	UK          Region = "uk"
	Switzerland Region = "switzerland"
	Japan       Region = "japan"
	Emerging    Region = "emerging"
	Global      Region = "global"
)

// AssetGroup is the coarse 5-way classification used by the allocation analysis.
type AssetGroup string

const (
	GroupGovernment AssetGroup = "government"
	GroupCorporate  AssetGroup = "corporate"
	GroupMunicipal  AssetGroup = "municipal"
	GroupSavings    AssetGroup = "savings"
	GroupOther      AssetGroup = "other"
)

// AssetGroups lists all groups in display order.
var AssetGroups = []AssetGroup{GroupGovernment, GroupCorporate, GroupMunicipal, GroupSavings, GroupOther}

// AssetType enumerates the supported fixed-income instrument categories.
type AssetType string

const (
	GovernmentBond        AssetType = "governmentBond"
	TreasuryBill          AssetType = "treasuryBill"
	TreasuryNote          AssetType = "treasuryNote"
	InflationLinkedBond   AssetType = "inflationLinkedBond"
	AgencyBond            AssetType = "agencyBond"
	CorporateBond         AssetType = "corporateBond"
	ConvertibleBond       AssetType = "convertibleBond"
	HighYieldBond         AssetType = "highYieldBond"
	SubordinatedBond      AssetType = "subordinatedBond"
	CoveredBond           AssetType = "coveredBond"
	MunicipalBond         AssetType = "municipalBond"
	RevenueBond           AssetType = "revenueBond"
	GeneralObligationBond AssetType = "generalObligationBond"
	SavingsAccount        AssetType = "savingsAccount"
	TimeDeposit           AssetType = "timeDeposit"
	CertificateOfDeposit  AssetType = "certificateOfDeposit"
	PerpetualBond         AssetType = "perpetualBond"
	StructuredNote        AssetType = "structuredNote"
	OtherAsset            AssetType = "other"
)

// assetGroups is the fixed type-to-group mapping used by the diversification
// analysis. A type missing from the table falls in GroupOther.
var assetGroups = map[AssetType]AssetGroup{
	GovernmentBond:        GroupGovernment,
	TreasuryBill:          GroupGovernment,
	TreasuryNote:          GroupGovernment,
	InflationLinkedBond:   GroupGovernment,
	AgencyBond:            GroupGovernment,
	CorporateBond:         GroupCorporate,
	ConvertibleBond:       GroupCorporate,
	HighYieldBond:         GroupCorporate,
	SubordinatedBond:      GroupCorporate,
	CoveredBond:           GroupCorporate,
	MunicipalBond:         GroupMunicipal,
	RevenueBond:           GroupMunicipal,
	GeneralObligationBond: GroupMunicipal,
	SavingsAccount:        GroupSavings,
	TimeDeposit:           GroupSavings,
	CertificateOfDeposit:  GroupSavings,
	PerpetualBond:         GroupOther,
	StructuredNote:        GroupOther,
	OtherAsset:            GroupOther,
}

// Group returns the coarse allocation group of the asset type.
func (t AssetType) Group() AssetGroup {
	if g, ok := assetGroups[t]; ok {
		return g
	}
	return GroupOther
}

// ParseAssetType validates an asset type name.
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(strings.TrimSpace(s))
	if _, ok := assetGroups[t]; !ok {
		return "", fmt.Errorf("unknown asset type %q", s)
	}
	return t, nil
}

// IssuerType identifies who issued the instrument. It is the fallback key
// when a rate-table lookup by asset type finds no entry.
type IssuerType string

const (
	IssuerGovernment IssuerType = "government"
	IssuerCorporate  IssuerType = "corporate"
	IssuerMunicipal  IssuerType = "municipal"
	IssuerBank       IssuerType = "bank"
	IssuerOther      IssuerType = "other"
)

// PaymentFrequency is the coupon payment schedule.
type PaymentFrequency string

const (
	PayAnnual     PaymentFrequency = "annual"
	PaySemiAnnual PaymentFrequency = "semiAnnual"
	PayQuarterly  PaymentFrequency = "quarterly"
	PayMonthly    PaymentFrequency = "monthly"
	PayAtMaturity PaymentFrequency = "atMaturity"
)

// FixedIncomeAsset is a bond-like holding recorded by the user. The engine
// treats it as read-only.
type FixedIncomeAsset struct {
	ID            string
	UserID        string
	Name          string
	Type          AssetType
	Issuer        IssuerType
	Purchase      Date
	Maturity      Date // zero only for perpetual instruments
	FaceValue     Money
	PurchasePrice Money
	CurrentPrice  Money // zero when no live price is known
	InterestRate  Percent
	Frequency     PaymentFrequency
	Region        Region
	Rating        string
	RatingAgency  string
	ESGRating     string
	Taxable       bool
	Callable      bool
	CallDate      Date
}

// Currency returns the asset's currency code, carried by its face value.
func (a FixedIncomeAsset) Currency() string { return a.FaceValue.Currency() }

// Group returns the coarse allocation group of the asset.
func (a FixedIncomeAsset) Group() AssetGroup { return a.Type.Group() }

// IsPerpetual reports whether the asset has no maturity by nature.
func (a FixedIncomeAsset) IsPerpetual() bool { return a.Type == PerpetualBond }

// Validate checks the record invariants. It returns an error describing the
// first violation found.
func (a FixedIncomeAsset) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("asset needs a name")
	}
	if _, err := ParseAssetType(string(a.Type)); err != nil {
		return err
	}
	if !a.FaceValue.IsPositive() {
		return fmt.Errorf("asset %q: face value must be positive, got %s", a.Name, a.FaceValue)
	}
	if !a.PurchasePrice.IsPositive() {
		return fmt.Errorf("asset %q: purchase price must be positive, got %s", a.Name, a.PurchasePrice)
	}
	if a.FaceValue.Currency() != a.PurchasePrice.Currency() {
		return fmt.Errorf("asset %q: face value and purchase price currencies differ (%s vs %s)",
			a.Name, a.FaceValue.Currency(), a.PurchasePrice.Currency())
	}
	if a.InterestRate < 0 || a.InterestRate > 100 {
		return fmt.Errorf("asset %q: interest rate must be within [0,100], got %s", a.Name, a.InterestRate)
	}
	if a.Maturity.IsZero() && !a.IsPerpetual() {
		return fmt.Errorf("asset %q: maturity date is required for type %s", a.Name, a.Type)
	}
	if a.Callable && a.CallDate.IsZero() {
		return fmt.Errorf("asset %q: call date is required for callable assets", a.Name)
	}
	return nil
}

// assetJSON is the persistence shape of an asset: one currency field shared
// by the three monetary amounts.
type assetJSON struct {
	ID            string           `json:"id"`
	UserID        string           `json:"userId,omitempty"`
	Name          string           `json:"name"`
	Type          AssetType        `json:"type"`
	Issuer        IssuerType       `json:"issuer,omitempty"`
	Purchase      Date             `json:"purchaseDate"`
	Maturity      *Date            `json:"maturityDate,omitempty"`
	FaceValue     float64          `json:"faceValue"`
	PurchasePrice float64          `json:"purchasePrice"`
	CurrentPrice  float64          `json:"currentPrice,omitempty"`
	InterestRate  float64          `json:"interestRate"`
	Frequency     PaymentFrequency `json:"paymentFrequency,omitempty"`
	Currency      string           `json:"currency"`
	Region        Region           `json:"region,omitempty"`
	Rating        string           `json:"rating,omitempty"`
	RatingAgency  string           `json:"ratingAgency,omitempty"`
	ESGRating     string           `json:"esgRating,omitempty"`
	Taxable       bool             `json:"taxable,omitempty"`
	Callable      bool             `json:"callable,omitempty"`
	CallDate      *Date            `json:"callDate,omitempty"`
}

func (a FixedIncomeAsset) MarshalJSON() ([]byte, error) {
	aux := assetJSON{
		ID:            a.ID,
		UserID:        a.UserID,
		Name:          a.Name,
		Type:          a.Type,
		Issuer:        a.Issuer,
		Purchase:      a.Purchase,
		FaceValue:     a.FaceValue.AsFloat(),
		PurchasePrice: a.PurchasePrice.AsFloat(),
		CurrentPrice:  a.CurrentPrice.AsFloat(),
		InterestRate:  float64(a.InterestRate),
		Frequency:     a.Frequency,
		Currency:      a.Currency(),
		Region:        a.Region,
		Rating:        a.Rating,
		RatingAgency:  a.RatingAgency,
		ESGRating:     a.ESGRating,
		Taxable:       a.Taxable,
		Callable:      a.Callable,
	}
	if !a.Maturity.IsZero() {
		m := a.Maturity
		aux.Maturity = &m
	}
	if !a.CallDate.IsZero() {
		c := a.CallDate
		aux.CallDate = &c
	}
	return json.Marshal(aux)
}

func (a *FixedIncomeAsset) UnmarshalJSON(b []byte) error {
	var aux assetJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*a = FixedIncomeAsset{
		ID:            aux.ID,
		UserID:        aux.UserID,
		Name:          aux.Name,
		Type:          aux.Type,
		Issuer:        aux.Issuer,
		Purchase:      aux.Purchase,
		FaceValue:     M(aux.FaceValue, aux.Currency),
		PurchasePrice: M(aux.PurchasePrice, aux.Currency),
		InterestRate:  Percent(aux.InterestRate),
		Frequency:     aux.Frequency,
		Region:        aux.Region,
		Rating:        aux.Rating,
		RatingAgency:  aux.RatingAgency,
		ESGRating:     aux.ESGRating,
		Taxable:       aux.Taxable,
		Callable:      aux.Callable,
	}
	if aux.CurrentPrice > 0 {
		a.CurrentPrice = M(aux.CurrentPrice, aux.Currency)
	}
	if aux.Maturity != nil {
		a.Maturity = *aux.Maturity
	}
	if aux.CallDate != nil {
		a.CallDate = *aux.CallDate
	}
	return nil
}
