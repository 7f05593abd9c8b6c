package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tailyapp/taily-api/internal/models"
	"github.com/tailyapp/taily-api/internal/usecase"
)

type PetController interface {
	ListPets(c echo.Context) error
	GetPet(c echo.Context) error
	CreatePet(c echo.Context) error
	UpdatePet(c echo.Context) error
	DeletePet(c echo.Context) error

	AddSchedule(c echo.Context) error
	UpdateSchedule(c echo.Context) error
	DeleteSchedule(c echo.Context) error

	AddCareRecord(c echo.Context) error
	UpdateCareRecord(c echo.Context) error
	DeleteCareRecord(c echo.Context) error

	AddMedicalRecord(c echo.Context) error
	UpdateMedicalRecord(c echo.Context) error
	DeleteMedicalRecord(c echo.Context) error

	AddPetIDRecord(c echo.Context) error
	UpdatePetIDRecord(c echo.Context) error
	DeletePetIDRecord(c echo.Context) error
}

type petController struct {
	petUsecase usecase.PetUsecase
}

func NewPetController(petUsecase usecase.PetUsecase) PetController {
	return &petController{
		petUsecase: petUsecase,
	}
}

// ListPets serves both the unfiltered listing and the by-owner variants
// (`?owner=` query and `/pets/user/:userId`).
func (h *petController) ListPets(c echo.Context) error {
	ctx := c.Request().Context()

	owner := c.Param("userId")
	if owner == "" {
		owner = c.QueryParam("owner")
	}

	var (
		pets []*models.Pet
		err  error
	)
	if owner != "" {
		pets, err = h.petUsecase.ListPetsByOwner(ctx, owner)
	} else {
		pets, err = h.petUsecase.ListPets(ctx)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pets)
}

func (h *petController) GetPet(c echo.Context) error {
	pet, err := h.petUsecase.GetPet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

func (h *petController) CreatePet(c echo.Context) error {
	var req models.CreatePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	pet, err := h.petUsecase.CreatePet(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pet)
}

func (h *petController) UpdatePet(c echo.Context) error {
	var req models.UpdatePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	pet, err := h.petUsecase.UpdatePet(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

func (h *petController) DeletePet(c echo.Context) error {
	pet, err := h.petUsecase.DeletePet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Pet deleted successfully",
		"pet":     pet,
	})
}

func (h *petController) AddSchedule(c echo.Context) error {
	var req models.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	schedule, err := h.petUsecase.AddSchedule(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, schedule)
}

func (h *petController) UpdateSchedule(c echo.Context) error {
	var req models.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	pet, err := h.petUsecase.UpdateSchedule(c.Request().Context(), c.Param("id"), c.Param("scheduleId"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

func (h *petController) DeleteSchedule(c echo.Context) error {
	pet, err := h.petUsecase.DeleteSchedule(c.Request().Context(), c.Param("id"), c.Param("scheduleId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

func (h *petController) AddCareRecord(c echo.Context) error {
	var req models.CareRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	care, err := h.petUsecase.AddCareRecord(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, care)
}

func (h *petController) UpdateCareRecord(c echo.Context) error {
	var req models.CareRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	pet, err := h.petUsecase.UpdateCareRecord(c.Request().Context(), c.Param("id"), c.Param("careId"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

func (h *petController) DeleteCareRecord(c echo.Context) error {
	pet, err := h.petUsecase.DeleteCareRecord(c.Request().Context(), c.Param("id"), c.Param("careId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

func (h *petController) AddMedicalRecord(c echo.Context) error {
	var req models.MedicalRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	record, err := h.petUsecase.AddMedicalRecord(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

func (h *petController) UpdateMedicalRecord(c echo.Context) error {
	var req models.MedicalRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	pet, err := h.petUsecase.UpdateMedicalRecord(c.Request().Context(), c.Param("id"), c.Param("recordId"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

func (h *petController) DeleteMedicalRecord(c echo.Context) error {
	pet, err := h.petUsecase.DeleteMedicalRecord(c.Request().Context(), c.Param("id"), c.Param("recordId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

func (h *petController) AddPetIDRecord(c echo.Context) error {
	var req models.PetIDRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	pet, err := h.petUsecase.AddPetIDRecord(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pet)
}

func (h *petController) UpdatePetIDRecord(c echo.Context) error {
	var req models.PetIDRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	pet, err := h.petUsecase.UpdatePetIDRecord(c.Request().Context(), c.Param("id"), c.Param("petIdRecordId"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

func (h *petController) DeletePetIDRecord(c echo.Context) error {
	pet, err := h.petUsecase.DeletePetIDRecord(c.Request().Context(), c.Param("id"), c.Param("petIdRecordId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}
