package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Wall-AR/sales-pulse-api/internal/domain"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/sellers"
	"github.com/Wall-AR/sales-pulse-api/pkg/apiErrors"
	"github.com/Wall-AR/sales-pulse-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Limite de tamanho da foto de perfil
const maxPhotoSize = 10 << 20 // 10 MB

// ListSellers lista todos os vendedores cadastrados
func ListSellers(service sellers.SellerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := service.ListSellers()
		if err != nil {
			logrus.Error("Erro ao listar vendedores: ", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendedores", nil)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}

// GetSeller retorna um vendedor por ID
func GetSeller(service sellers.SellerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do vendedor não fornecido", nil)
			return
		}

		seller, err := service.GetSeller(id)
		if err != nil {
			if errors.Is(err, sellers.ErrSellerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Vendedor não encontrado", nil)
				return
			}

			logrus.Error("Erro ao buscar vendedor: ", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendedor", nil)
			return
		}

		respondJSON(w, http.StatusOK, seller)
	}
}

// CreateSeller cria um vendedor. Aceita JSON ou multipart/form-data com o
// campo de arquivo "photo" para a foto de perfil. Como no UpdateSeller, uma
// falha no upload da foto não desfaz o cadastro: a resposta traz o vendedor
// criado e o campo "photo_error".
func CreateSeller(service sellers.SellerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSeller")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateSellerRequest
		var photo *sellers.PhotoUpload

		if isMultipart(r) {
			file, header, err := parseSellerMultipart(r, &req)
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao processar formulário", nil)
				return
			}
			if file != nil {
				defer file.Close()
				photo = &sellers.PhotoUpload{Filename: header.Filename, Content: file}
			}
		} else {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
				return
			}
		}

		result, err := service.CreateSeller(r.Context(), &req, photo, userClaims.Actor())
		if err != nil {
			handleSellerError(w, err, "Erro ao criar vendedor")
			return
		}

		response := map[string]any{
			"seller": result.Seller,
		}
		if result.PhotoErr != nil {
			response["photo_error"] = result.PhotoErr.Error()
		}

		respondJSON(w, http.StatusCreated, response)
	}
}

// UpdateSeller atualiza o cadastro de um vendedor. A troca de foto via
// multipart é processada em sucesso parcial: se o upload falhar, os demais
// campos são salvos e a resposta indica o problema com a foto.
func UpdateSeller(service sellers.SellerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSeller")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do vendedor não fornecido", nil)
			return
		}

		var req domain.UpdateSellerRequest
		var photo *sellers.PhotoUpload

		if isMultipart(r) {
			file, header, err := parseSellerUpdateMultipart(r, &req)
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao processar formulário", nil)
				return
			}
			if file != nil {
				defer file.Close()
				photo = &sellers.PhotoUpload{Filename: header.Filename, Content: file}
			}
		} else {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
				return
			}
		}

		req.ID = id

		result, err := service.UpdateSeller(r.Context(), &req, photo, userClaims.Actor())
		if err != nil {
			handleSellerError(w, err, "Erro ao atualizar vendedor")
			return
		}

		response := map[string]any{
			"seller": result.Seller,
		}
		if result.PhotoErr != nil {
			response["photo_error"] = result.PhotoErr.Error()
		}

		respondJSON(w, http.StatusOK, response)
	}
}

// DeleteSeller remove um vendedor
func DeleteSeller(service sellers.SellerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteSeller")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do vendedor não fornecido", nil)
			return
		}

		if err := service.DeleteSeller(r.Context(), id, userClaims.Actor()); err != nil {
			handleSellerError(w, err, "Erro ao remover vendedor")
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

func handleSellerError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, sellers.ErrSellerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Vendedor não encontrado", nil)

	case errors.Is(err, sellers.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, sellers.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logrus.Error(fallback, ": ", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func parseSellerMultipart(r *http.Request, req *domain.CreateSellerRequest) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		return nil, nil, err
	}

	req.Name = r.FormValue("name")
	req.Email = r.FormValue("email")
	req.Status = r.FormValue("status")

	return photoFromForm(r)
}

func parseSellerUpdateMultipart(r *http.Request, req *domain.UpdateSellerRequest) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		return nil, nil, err
	}

	// No multipart só os campos presentes no formulário são alterados
	if values, ok := r.MultipartForm.Value["name"]; ok && len(values) > 0 {
		req.Name = &values[0]
	}
	if values, ok := r.MultipartForm.Value["email"]; ok && len(values) > 0 {
		req.Email = &values[0]
	}
	if values, ok := r.MultipartForm.Value["status"]; ok && len(values) > 0 {
		req.Status = &values[0]
	}
	if values, ok := r.MultipartForm.Value["photo_url"]; ok && len(values) > 0 {
		req.PhotoURL = &values[0]
	}

	return photoFromForm(r)
}

func photoFromForm(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	return file, header, nil
}
