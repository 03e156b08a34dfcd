package bondplan

import (
	"testing"
	"time"
)

func TestValidateRecord(t *testing.T) {
	good := bond("Bund", GovernmentBond, NewDate(2030, time.June, 1), 1000, 980, 2)
	if err := ValidateRecord(good); err != nil {
		t.Errorf("ValidateRecord(asset) = %v", err)
	}
	if err := ValidateRecord(&good); err != nil {
		t.Errorf("ValidateRecord(*asset) = %v", err)
	}
	if err := ValidateRecord(outflow(100, asOf, "x")); err != nil {
		t.Errorf("ValidateRecord(event) = %v", err)
	}
	u := eurUser(Moderate)
	if err := ValidateRecord(&u); err != nil {
		t.Errorf("ValidateRecord(user) = %v", err)
	}
	if err := ValidateRecord(42); err == nil {
		t.Error("ValidateRecord accepted an unknown record type")
	}
	bad := good
	bad.Name = ""
	if err := ValidateRecord(bad); err == nil {
		t.Error("ValidateRecord accepted an invalid asset")
	}
}
