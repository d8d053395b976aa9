package main

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"rentals/src/models"
)

var reservationCodePattern = regexp.MustCompile(`^[0-9A-F]{6}$`)

func (s *TestSuite) createReservation(listingId string) string {
	body := fmt.Sprintf(`{
		"check_in": "2023-01-06",
		"check_out": "2023-01-07",
		"price": "50.00",
		"total_guests": 2,
		"comments": "Some comment...",
		"listing": %q
	}`, listingId)
	w := s.request(http.MethodPost, "/api/v1/reservations", body)
	s.Require().Equal(http.StatusCreated, w.Code)
	return gjson.Get(w.Body.String(), "id").String()
}

func (s *TestSuite) TestCreateReservation() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)

	w := s.request(http.MethodPost, "/api/v1/reservations", fmt.Sprintf(`{
		"check_in": "2023-01-06",
		"check_out": "2023-01-07",
		"price": "50.00",
		"total_guests": 2,
		"comments": "Some comment...",
		"listing": %q
	}`, listingId))

	s.Equal(http.StatusCreated, w.Code)
	s.Equal(int64(1), s.reservationCount())

	body := w.Body.String()
	s.Equal("2023-01-06", gjson.Get(body, "check_in").String())
	s.Equal("2023-01-07", gjson.Get(body, "check_out").String())
	s.Equal("50.00", gjson.Get(body, "price").String())
	s.Equal(int64(2), gjson.Get(body, "total_guests").Int())
	s.Equal("Some comment...", gjson.Get(body, "comments").String())
	// write shape: reference by id
	s.Equal(listingId, gjson.Get(body, "listing").String())
	s.Regexp(reservationCodePattern, gjson.Get(body, "code").String())
}

func (s *TestSuite) TestCreateReservationWithInvalidCheckOut() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)

	w := s.request(http.MethodPost, "/api/v1/reservations", fmt.Sprintf(`{
		"check_in": "2023-01-06",
		"check_out": "2023-01-05",
		"price": "50.00",
		"total_guests": 2,
		"comments": "Some comment...",
		"listing": %q
	}`, listingId))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(0), s.reservationCount())
	s.JSONEq(`{"check_out": ["Check-out must be after check-in date."]}`, w.Body.String())
}

func (s *TestSuite) TestCreateReservationSameDayStay() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)

	w := s.request(http.MethodPost, "/api/v1/reservations", fmt.Sprintf(`{
		"check_in": "2023-01-06",
		"check_out": "2023-01-06",
		"price": "50.00",
		"total_guests": 1,
		"listing": %q
	}`, listingId))

	s.Equal(http.StatusCreated, w.Code)
	s.Equal(int64(1), s.reservationCount())
}

func (s *TestSuite) TestCreateReservationIgnoresClientCode() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)

	w := s.request(http.MethodPost, "/api/v1/reservations", fmt.Sprintf(`{
		"code": "HACKED",
		"check_in": "2023-01-06",
		"check_out": "2023-01-07",
		"price": "50.00",
		"total_guests": 2,
		"listing": %q
	}`, listingId))

	s.Equal(http.StatusCreated, w.Code)
	code := gjson.Get(w.Body.String(), "code").String()
	s.NotEqual("HACKED", code)
	s.Regexp(reservationCodePattern, code)
}

func (s *TestSuite) TestCreateReservationUnknownListing() {
	missing := uuid.NewString()
	w := s.request(http.MethodPost, "/api/v1/reservations", fmt.Sprintf(`{
		"check_in": "2023-01-06",
		"check_out": "2023-01-07",
		"price": "50.00",
		"total_guests": 2,
		"listing": %q
	}`, missing))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(
		fmt.Sprintf("Invalid pk %q - object does not exist.", missing),
		gjson.Get(w.Body.String(), "listing.0").String(),
	)
}

func (s *TestSuite) TestRetrieveReservationExpandsListingChain() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)
	reservationId := s.createReservation(listingId)

	w := s.request(http.MethodGet, "/api/v1/reservations/"+reservationId, "")

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal(listingId, gjson.Get(body, "listing.id").String())
	s.Equal("Airbnb", gjson.Get(body, "listing.platform").String())
	s.Equal(propertyId, gjson.Get(body, "listing.property.id").String())
	s.Equal("property1", gjson.Get(body, "listing.property.code").String())
}

func (s *TestSuite) TestListReservationsNewestFirst() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)
	first := s.createReservation(listingId)
	second := s.createReservation(listingId)

	w := s.request(http.MethodGet, "/api/v1/reservations", "")

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal(int64(2), gjson.Get(body, "#").Int())
	s.Equal(second, gjson.Get(body, "0.id").String())
	s.Equal(first, gjson.Get(body, "1.id").String())
	s.Equal("property1", gjson.Get(body, "0.listing.property.code").String())
}

func (s *TestSuite) TestUpdateReservationNotAllowed() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)
	reservationId := s.createReservation(listingId)

	w := s.request(http.MethodPut, "/api/v1/reservations/"+reservationId, `{"price": "100.00"}`)
	s.Equal(http.StatusMethodNotAllowed, w.Code)

	w = s.request(http.MethodPatch, "/api/v1/reservations/"+reservationId, `{"price": "100.00"}`)
	s.Equal(http.StatusMethodNotAllowed, w.Code)

	var reservation models.Reservation
	s.Require().NoError(s.DB.First(&reservation, "id = ?", reservationId).Error)
	s.Equal("50.00", reservation.Price.StringFixed(2))
}

func (s *TestSuite) TestDeleteReservation() {
	propertyId := s.createProperty("property1")
	listingId := s.createListing("Airbnb", propertyId)
	reservationId := s.createReservation(listingId)

	w := s.request(http.MethodDelete, "/api/v1/reservations/"+reservationId, "")
	s.Equal(http.StatusNoContent, w.Code)
	s.Equal(int64(0), s.reservationCount())
}

func (s *TestSuite) TestHeadReservations() {
	w := s.request(http.MethodHead, "/api/v1/reservations", "")
	s.Equal(http.StatusOK, w.Code)
}
