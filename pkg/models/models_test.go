package models

import "testing"

func TestClosedSets(t *testing.T) {
	if !IsServiceCategory(ServiceCategoryRealEstate) || IsServiceCategory(ServiceCategoryAll) || IsServiceCategory("Bogus") {
		t.Fatal("unexpected service category membership")
	}
	if !IsPaymentFilter(PaymentFilterAll) || !IsPaymentFilter(PaymentFilterRejected) || IsPaymentFilter("Bogus") {
		t.Fatal("unexpected payment filter membership")
	}
	if !IsCategory(IncidentCategoryTraffic) || IsCategory(IncidentCategoryAll) {
		t.Fatal("unexpected incident category membership")
	}
}
