//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/user"
	"venuebook/internal/handler/api"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/httptest"
	"venuebook/tests/common/testutil"
	commandsmock "venuebook/tests/mock/commands"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actorID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleUser)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetUserBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the pending hold", func() {
		created := b.BuildDomain()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(created.ID(), resp.ID)
		s.Equal(booking.StatusPending.String(), resp.Status)
	})

	s.Run("validation: malformed requests are rejected before the usecase", func() {
		cases := []testCaseBooking{
			{name: "missing venue_id", mutate: testutil.Field("venue_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing shift_template_id", mutate: testutil.Field("shift_template_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing shift_date", mutate: testutil.Field("shift_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing package_id", mutate: testutil.Field("package_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing guest_count", mutate: testutil.Field("guest_count", nil), expectCode: http.StatusBadRequest},
			{name: "malformed shift_date", mutate: testutil.Field("shift_date", "10/03/2026"), expectCode: http.StatusBadRequest, expectInBody: "shift date"},
			{name: "non-uuid venue_id", mutate: testutil.Field("venue_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error mapping from the usecase", func() {
		cases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "venue not found", err: commands.ErrVenueNotFound, expectCode: http.StatusNotFound, expectInBody: "Venue not found"},
			{name: "template not found", err: commands.ErrTemplateNotFound, expectCode: http.StatusNotFound, expectInBody: "Shift template not found"},
			{name: "package not found", err: commands.ErrPackageNotFound, expectCode: http.StatusNotFound, expectInBody: "Package not found"},
			{name: "menu item not found", err: commands.ErrMenuItemNotFound, expectCode: http.StatusNotFound, expectInBody: "Menu item not found"},
			{name: "venue inactive", err: commands.ErrVenueInactive, expectCode: http.StatusUnprocessableEntity, expectInBody: "not active"},
			{name: "template not eligible", err: commands.ErrTemplateNotEligible, expectCode: http.StatusUnprocessableEntity, expectInBody: "not offered"},
			{name: "guest count", err: commands.ErrInvalidGuestCount, expectCode: http.StatusUnprocessableEntity, expectInBody: "capacity"},
			{name: "slot taken", err: commands.ErrSlotUnavailable, expectCode: http.StatusConflict, expectInBody: "already held"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns the booking view", func() {
		view := builder.NewBookingBuilder().BuildViewQuery()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.VenueName, resp.VenueName)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("forbidden for another customer's booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).
			Return(nil, queries.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "permissions")
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

// ================================================================================
// TestGetUserBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	s.Run("success: lists the caller's bookings", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().AsConfirmed().BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.actorID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var resp []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
		s.Equal(items[0].ID, resp[0].ID)
	})

	s.Run("empty list", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.actorID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var resp []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Empty(resp)
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: returns 204 and records a customer cancellation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id, booking.ReasonCustomerRequest).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id, booking.ReasonCustomerRequest).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("forbidden", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id, booking.ReasonCustomerRequest).
			Return(commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "permissions")
	})

	s.Run("terminal booking cannot be cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id, booking.ReasonCustomerRequest).
			Return(commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "transition")
	})
}
