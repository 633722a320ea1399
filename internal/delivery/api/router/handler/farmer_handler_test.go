package handler

import (
	"net/http"
	"testing"
	"time"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	mockUC "townscoffee/internal/mocks/usecase"
	"townscoffee/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFarmerHandler_SubmitApplication(t *testing.T) {
	farmerUC := mockUC.NewMockFarmerUsecase(t)
	h := NewFarmerHandler(FarmerHandlerParams{FarmerUC: farmerUC})

	farmerUC.EXPECT().SubmitFarmerApplication(mock.Anything, mock.MatchedBy(func(in usecase.SubmitFarmerApplicationInput) bool {
		return in.UserID == "uid-1" && in.FarmName == "La Esperanza" && in.Latitude == 4.63 && in.Longitude == -75.57
	})).Return(&usecase.FarmerApplicationOutput{
		Farmer:  &entity.CoffeeFarmer{ID: "f1", UserID: "uid-1", Status: entity.FarmerStatusPending},
		Message: "Application submitted and pending review",
	}, nil)

	rec, env := serve(t, h.SubmitApplication, call{
		method: http.MethodPost,
		target: "/api/v1/farmers/applications",
		body:   `{"farmName":"La Esperanza","townId":"t1","latitude":4.63,"longitude":-75.57,"hectares":3.5}`,
		userID: "uid-1",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Application submitted and pending review", env.Message)
	assert.Equal(t, entity.FarmerStatusPending, decodeData[entity.CoffeeFarmer](t, env).Status)
}

func TestFarmerHandler_SubmitApplicationValidation(t *testing.T) {
	h := NewFarmerHandler(FarmerHandlerParams{FarmerUC: mockUC.NewMockFarmerUsecase(t)})

	rec, env := serve(t, h.SubmitApplication, call{
		method: http.MethodPost,
		target: "/api/v1/farmers/applications",
		body:   `{"townId":"t1","latitude":123}`,
		userID: "uid-1",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "farmName: this field is required; latitude: invalid coordinate", env.Error.Details)
}

func TestFarmerHandler_SubmitApplicationExists(t *testing.T) {
	farmerUC := mockUC.NewMockFarmerUsecase(t)
	h := NewFarmerHandler(FarmerHandlerParams{FarmerUC: farmerUC})

	farmerUC.EXPECT().SubmitFarmerApplication(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrFarmerApplicationExists)

	rec, env := serve(t, h.SubmitApplication, call{
		method: http.MethodPost,
		target: "/api/v1/farmers/applications",
		body:   `{"farmName":"La Esperanza","townId":"t1"}`,
		userID: "uid-1",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FARMER_APPLICATION_EXISTS", env.Error.Code)
}

func TestFarmerHandler_GetApplicationStatus(t *testing.T) {
	farmerUC := mockUC.NewMockFarmerUsecase(t)
	h := NewFarmerHandler(FarmerHandlerParams{FarmerUC: farmerUC})
	applied := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	farmerUC.EXPECT().GetFarmerApplicationStatus(mock.Anything, "f1").Return(&usecase.FarmerApplicationStatusOutput{
		FarmerID:        "f1",
		Status:          entity.FarmerStatusRejected,
		ApplicationDate: applied,
		RejectionReason: "missing documents",
	}, nil)

	rec, env := serve(t, h.GetApplicationStatus, call{
		method: http.MethodGet,
		target: "/api/v1/farmers/f1/status",
		params: map[string]string{"id": "f1"},
		userID: "uid-1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeData[ApplicationStatusResponse](t, env)
	assert.Equal(t, "rejected", status.Status)
	assert.Equal(t, "missing documents", status.RejectionReason)
	assert.Nil(t, status.VerificationDate)
}

func TestFarmerHandler_ListFarmers(t *testing.T) {
	farmerUC := mockUC.NewMockFarmerUsecase(t)
	h := NewFarmerHandler(FarmerHandlerParams{FarmerUC: farmerUC})

	farmerUC.EXPECT().SearchFarmers(mock.Anything, "geisha").
		Return([]*entity.CoffeeFarmer{{ID: "f5", Status: entity.FarmerStatusApproved}}, nil)
	farmerUC.EXPECT().SearchFarmers(mock.Anything, "").Return(nil, nil)

	rec, env := serve(t, h.ListFarmers, call{method: http.MethodGet, target: "/api/v1/farmers?q=geisha"})
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeData[listData[entity.CoffeeFarmer]](t, env)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "f5", list.Items[0].ID)

	rec, env = serve(t, h.ListFarmers, call{method: http.MethodGet, target: "/api/v1/farmers"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, decodeData[listData[entity.CoffeeFarmer]](t, env).Items)
}

func TestFarmerHandler_GetTopRatedFarmers(t *testing.T) {
	farmerUC := mockUC.NewMockFarmerUsecase(t)
	h := NewFarmerHandler(FarmerHandlerParams{FarmerUC: farmerUC})

	farmerUC.EXPECT().GetTopRatedFarmers(mock.Anything, 2).
		Return([]*entity.CoffeeFarmer{{ID: "f2"}, {ID: "f1"}}, nil)

	rec, env := serve(t, h.GetTopRatedFarmers, call{method: http.MethodGet, target: "/api/v1/farmers/top?limit=2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decodeData[listData[entity.CoffeeFarmer]](t, env).TotalCount)

	rec, _ = serve(t, h.GetTopRatedFarmers, call{method: http.MethodGet, target: "/api/v1/farmers/top?limit=many"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFarmerHandler_UpdateProfile(t *testing.T) {
	farmerUC := mockUC.NewMockFarmerUsecase(t)
	h := NewFarmerHandler(FarmerHandlerParams{FarmerUC: farmerUC})

	farmerUC.EXPECT().UpdateFarmerProfile(mock.Anything, mock.MatchedBy(func(in usecase.UpdateFarmerProfileInput) bool {
		return in.FarmerID == "f1" && in.UserID == "uid-1" && in.FarmName == "Finca Nueva" && in.Hectares == 8
	})).Return(&usecase.FarmerApplicationOutput{
		Farmer:  &entity.CoffeeFarmer{ID: "f1", UserID: "uid-1", FarmName: "Finca Nueva"},
		Message: "Farmer profile updated",
	}, nil)

	rec, env := serve(t, h.UpdateProfile, call{
		method: http.MethodPut,
		target: "/api/v1/farmers/f1",
		body:   `{"farmName":"Finca Nueva","hectares":8}`,
		params: map[string]string{"id": "f1"},
		userID: "uid-1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Farmer profile updated", env.Message)
	assert.Equal(t, "Finca Nueva", decodeData[entity.CoffeeFarmer](t, env).FarmName)
}

func TestFarmerHandler_UpdateProfileForbidden(t *testing.T) {
	farmerUC := mockUC.NewMockFarmerUsecase(t)
	h := NewFarmerHandler(FarmerHandlerParams{FarmerUC: farmerUC})

	farmerUC.EXPECT().UpdateFarmerProfile(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrForbidden)

	rec, env := serve(t, h.UpdateProfile, call{
		method: http.MethodPut,
		target: "/api/v1/farmers/f1",
		body:   `{"farmName":"Finca Nueva"}`,
		params: map[string]string{"id": "f1"},
		userID: "uid-2",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestFarmerHandler_UpdateProfileRequiresUser(t *testing.T) {
	h := NewFarmerHandler(FarmerHandlerParams{FarmerUC: mockUC.NewMockFarmerUsecase(t)})

	rec, _ := serve(t, h.UpdateProfile, call{
		method: http.MethodPut,
		target: "/api/v1/farmers/f1",
		body:   `{"farmName":"Finca Nueva"}`,
		params: map[string]string{"id": "f1"},
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandler_ApproveAndReject(t *testing.T) {
	farmerUC := mockUC.NewMockFarmerUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{FarmerUC: farmerUC, Logger: newDiscardLogger()})

	farmerUC.EXPECT().ApproveFarmerApplication(mock.Anything, "f1").Return(&usecase.FarmerApplicationOutput{
		Farmer:  &entity.CoffeeFarmer{ID: "f1", Status: entity.FarmerStatusApproved, IsVerified: true},
		Message: "Application approved",
	}, nil)
	farmerUC.EXPECT().ApproveFarmerApplication(mock.Anything, "f2").
		Return(nil, domainerrors.ErrInvalidStatusTransition)
	farmerUC.EXPECT().RejectFarmerApplication(mock.Anything, usecase.RejectFarmerApplicationInput{FarmerID: "f3", Reason: "no permits"}).
		Return(&usecase.FarmerApplicationOutput{
			Farmer: &entity.CoffeeFarmer{ID: "f3", Status: entity.FarmerStatusRejected, RejectionReason: "no permits"},
		}, nil)

	rec, env := serve(t, h.Approve, call{method: http.MethodPost, target: "/api/v1/admin/farmers/f1/approve", params: map[string]string{"id": "f1"}, userID: "admin-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[entity.CoffeeFarmer](t, env).IsVerified)

	rec, env = serve(t, h.Approve, call{method: http.MethodPost, target: "/api/v1/admin/farmers/f2/approve", params: map[string]string{"id": "f2"}, userID: "admin-1"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)

	rec, env = serve(t, h.Reject, call{
		method: http.MethodPost,
		target: "/api/v1/admin/farmers/f3/reject",
		body:   `{"reason":"no permits"}`,
		params: map[string]string{"id": "f3"},
		userID: "admin-1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no permits", decodeData[entity.CoffeeFarmer](t, env).RejectionReason)
}

func TestAdminHandler_RejectRequiresReason(t *testing.T) {
	h := NewAdminHandler(AdminHandlerParams{FarmerUC: mockUC.NewMockFarmerUsecase(t), Logger: newDiscardLogger()})

	rec, env := serve(t, h.Reject, call{
		method: http.MethodPost,
		target: "/api/v1/admin/farmers/f3/reject",
		body:   `{}`,
		params: map[string]string{"id": "f3"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "reason: this field is required", env.Error.Details)
}

func TestAdminHandler_ListPending(t *testing.T) {
	farmerUC := mockUC.NewMockFarmerUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{FarmerUC: farmerUC, Logger: newDiscardLogger()})

	farmerUC.EXPECT().ListPendingApplications(mock.Anything).Return(nil, nil)

	rec, env := serve(t, h.ListPending, call{method: http.MethodGet, target: "/api/v1/admin/farmers/pending"})

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeData[listData[entity.CoffeeFarmer]](t, env)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
}

func TestUserHandler_Profile(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewUserHandler(UserHandlerParams{AuthUC: authUC})

	authUC.EXPECT().GetProfile(mock.Anything, "uid-1").Return(&entity.User{ID: "uid-1", City: "Armenia"}, nil)
	authUC.EXPECT().UpdateProfile(mock.Anything, mock.MatchedBy(func(in usecase.UpdateProfileInput) bool {
		return in.UserID == "uid-1" && in.City == "Salento" && in.BirthDate.IsZero()
	})).Return(&entity.User{ID: "uid-1", City: "Salento"}, nil)

	rec, env := serve(t, h.GetProfile, call{method: http.MethodGet, target: "/user/profile", userID: "uid-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Armenia", decodeData[entity.User](t, env).City)

	rec, env = serve(t, h.UpdateProfile, call{method: http.MethodPut, target: "/user/profile", body: `{"city":"Salento"}`, userID: "uid-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Salento", decodeData[entity.User](t, env).City)

	rec, _ = serve(t, h.GetProfile, call{method: http.MethodGet, target: "/user/profile"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
