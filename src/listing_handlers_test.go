package main

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

func (s *TestSuite) createListing(platform, propertyId string) string {
	body := fmt.Sprintf(`{"platform":%q,"platform_fee":"5.00","property":%q}`, platform, propertyId)
	w := s.request(http.MethodPost, "/api/v1/listings", body)
	s.Require().Equal(http.StatusCreated, w.Code)
	return gjson.Get(w.Body.String(), "id").String()
}

func (s *TestSuite) TestCreateListingReturnsBareReference() {
	propertyId := s.createProperty("property1")

	w := s.request(http.MethodPost, "/api/v1/listings", fmt.Sprintf(`{
		"platform": "Airbnb",
		"platform_fee": "5.00",
		"property": %q
	}`, propertyId))

	s.Equal(http.StatusCreated, w.Code)
	s.Equal(int64(1), s.listingCount())

	body := w.Body.String()
	s.Equal("Airbnb", gjson.Get(body, "platform").String())
	s.Equal("5.00", gjson.Get(body, "platform_fee").String())
	// write shape: reference by id, not the expanded record
	s.Equal(propertyId, gjson.Get(body, "property").String())
}

func (s *TestSuite) TestCreateListingUnknownProperty() {
	missing := uuid.NewString()
	w := s.request(http.MethodPost, "/api/v1/listings", fmt.Sprintf(`{
		"platform": "Airbnb",
		"platform_fee": "5.00",
		"property": %q
	}`, missing))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(0), s.listingCount())
	s.Equal(
		fmt.Sprintf("Invalid pk %q - object does not exist.", missing),
		gjson.Get(w.Body.String(), "property.0").String(),
	)
}

func (s *TestSuite) TestRetrieveListingExpandsProperty() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)

	w := s.request(http.MethodGet, "/api/v1/listings/"+listingId, "")

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal(propertyId, gjson.Get(body, "property.id").String())
	s.Equal("property1", gjson.Get(body, "property.code").String())
	s.Equal("20.00", gjson.Get(body, "property.cleaning_price").String())
}

func (s *TestSuite) TestListingReadReflectsPropertyUpdate() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)

	w := s.request(http.MethodPut, "/api/v1/properties/"+propertyId, `{
		"code": "property1-updated",
		"guest_limit": 9,
		"bathrooms": 2,
		"accept_pets": false,
		"cleaning_price": "20.00"
	}`)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/v1/listings/"+listingId, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("property1-updated", gjson.Get(w.Body.String(), "property.code").String())
	s.Equal(int64(9), gjson.Get(w.Body.String(), "property.guest_limit").Int())
}

func (s *TestSuite) TestListListingsNewestFirst() {
	propertyId := s.createProperty("property1")
	s.createListing("Airbnb", propertyId)
	s.createListing("Cloudbeds", propertyId)

	w := s.request(http.MethodGet, "/api/v1/listings", "")

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal(int64(2), gjson.Get(body, "#").Int())
	s.Equal("Cloudbeds", gjson.Get(body, "0.platform").String())
	s.Equal("Airbnb", gjson.Get(body, "1.platform").String())
	// list uses the read shape
	s.Equal("property1", gjson.Get(body, "0.property.code").String())
}

func (s *TestSuite) TestUpdateListingFullReplace() {
	propertyId := s.createProperty("property1")
	otherId := s.createProperty("property2")
	listingId := s.createListing("Airbnb", propertyId)

	w := s.request(http.MethodPut, "/api/v1/listings/"+listingId, fmt.Sprintf(`{
		"platform": "Booking.com",
		"platform_fee": "7.50",
		"property": %q
	}`, otherId))

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal("Booking.com", gjson.Get(body, "platform").String())
	s.Equal("7.50", gjson.Get(body, "platform_fee").String())
	s.Equal(otherId, gjson.Get(body, "property").String())
}

func (s *TestSuite) TestPatchListingPartialUpdate() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)

	w := s.request(http.MethodPatch, "/api/v1/listings/"+listingId, `{"platform": "Vrbo"}`)

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal("Vrbo", gjson.Get(body, "platform").String())
	s.Equal("5.00", gjson.Get(body, "platform_fee").String())
	s.Equal(propertyId, gjson.Get(body, "property").String())
}

func (s *TestSuite) TestDeleteListingNotAllowed() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)

	w := s.request(http.MethodDelete, "/api/v1/listings/"+listingId, "")

	s.Equal(http.StatusMethodNotAllowed, w.Code)
	s.Equal(int64(1), s.listingCount())
}

func (s *TestSuite) TestHeadListings() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)

	w := s.request(http.MethodHead, "/api/v1/listings", "")
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodHead, "/api/v1/listings/"+listingId, "")
	s.Equal(http.StatusOK, w.Code)
}
