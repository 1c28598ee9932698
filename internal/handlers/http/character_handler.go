package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/character-api/internal/domain/entities"
	"github.com/rafabene/character-api/internal/domain/errors"
	"github.com/rafabene/character-api/internal/handlers/dto"
	"github.com/rafabene/character-api/internal/services"
)

// CharacterHandler lida com requisições HTTP relacionadas a personagens
type CharacterHandler struct {
	characterService *services.CharacterService
	baseURL          string
	exposeDetails    bool
}

// NewCharacterHandler cria um novo CharacterHandler.
// exposeDetails inclui um problem RFC 7807 com a causa no envelope 500;
// baseURL prefixa o type do problem.
func NewCharacterHandler(characterService *services.CharacterService, baseURL string, exposeDetails bool) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
		baseURL:          baseURL,
		exposeDetails:    exposeDetails,
	}
}

// CreateCharacter godoc
// @Summary      Cria um personagem
// @Tags         characters
// @Accept       json
// @Produce      json
// @Param        character  body      dto.CreateCharacterRequest  true  "Personagem"
// @Success      201        {object}  dto.Envelope{data=dto.CharacterResponse}
// @Failure      400        {object}  dto.Envelope{data=[]dto.ValidationError}
// @Failure      409        {object}  dto.Envelope
// @Failure      500        {object}  dto.Envelope
// @Router       /api/characters [post]
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	var req dto.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	character, err := h.characterService.CreateCharacter(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.respondError(c, err, "character.create_failed")
		return
	}

	c.JSON(http.StatusCreated, dto.Created(dto.ToCharacterResponse(character), dto.T(c, "character.created")))
}

// GetCharacters godoc
// @Summary      Lista personagens, mais recentes primeiro
// @Tags         characters
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.CharacterResponse}
// @Failure      500  {object}  dto.Envelope
// @Router       /api/characters [get]
func (h *CharacterHandler) GetCharacters(c *gin.Context) {
	characters, err := h.characterService.GetAllCharacters(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "character.list_failed")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCharacterResponses(characters), dto.T(c, "character.listed")))
}

// GetCharacter godoc
// @Summary      Busca um personagem por ID
// @Tags         characters
// @Produce      json
// @Param        id   path      int  true  "ID do personagem"
// @Success      200  {object}  dto.Envelope{data=dto.CharacterResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /api/characters/{id} [get]
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	character, err := h.characterService.GetCharacterByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "character.get_failed")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCharacterResponse(character), dto.T(c, "character.retrieved")))
}

// UpdateCharacter godoc
// @Summary      Atualiza parcialmente um personagem
// @Tags         characters
// @Accept       json
// @Produce      json
// @Param        id         path      int                         true  "ID do personagem"
// @Param        character  body      dto.UpdateCharacterRequest  true  "Campos a alterar"
// @Success      200        {object}  dto.Envelope{data=dto.CharacterResponse}
// @Failure      400        {object}  dto.Envelope
// @Failure      404        {object}  dto.Envelope
// @Failure      409        {object}  dto.Envelope
// @Failure      500        {object}  dto.Envelope
// @Router       /api/characters/{id} [patch]
func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	character, err := h.characterService.UpdateCharacter(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		h.respondError(c, err, "character.update_failed")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCharacterResponse(character), dto.T(c, "character.updated")))
}

// DeleteCharacter godoc
// @Summary      Remove um personagem
// @Tags         characters
// @Produce      json
// @Param        id   path      int  true  "ID do personagem"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /api/characters/{id} [delete]
func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.characterService.DeleteCharacter(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "character.delete_failed")
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil, dto.T(c, "character.deleted")))
}

// parseID lê o parâmetro :id; só inteiros positivos são aceitos
func (h *CharacterHandler) parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.BadRequest(dto.T(c, "error.invalid_id", map[string]any{"ID": raw}), nil))
		return 0, false
	}
	return id, true
}

func (h *CharacterHandler) badRequest(c *gin.Context, err error) {
	message, fieldErrs := dto.BindingErrors(err)
	if fieldErrs == nil {
		c.JSON(http.StatusBadRequest, dto.BadRequest(message, nil))
		return
	}
	c.JSON(http.StatusBadRequest, dto.BadRequest(message, fieldErrs))
}

// respondError escolhe o status pelo Kind do erro de domínio
func (h *CharacterHandler) respondError(c *gin.Context, err error, failedKey string) {
	switch errors.KindOf(err) {
	case errors.KindNotFound:
		c.JSON(http.StatusNotFound, dto.NotFound(errors.MessageOf(err)))
	case errors.KindDuplicateName:
		c.JSON(http.StatusConflict, dto.Conflict(errors.MessageOf(err)))
	case errors.KindValidation:
		c.JSON(http.StatusBadRequest, dto.BadRequest(validationMessage(c, err), nil))
	default:
		_ = c.Error(err)
		if h.exposeDetails {
			problem := problems.NewDetailedProblem(http.StatusInternalServerError, err.Error())
			problem.Type = h.baseURL + errors.ProblemTypeInternal
			problem.Instance = c.Request.URL.Path
			c.JSON(http.StatusInternalServerError, dto.InternalError(dto.T(c, failedKey), problem))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalError(dto.T(c, failedKey), nil))
	}
}

// validationKeys associa as regras de negócio às mensagens traduzidas
var validationKeys = []struct {
	err error
	key string
}{
	{entities.ErrEmptyPatch, "validation.empty_patch"},
	{entities.ErrNameRequired, "validation.name_required"},
	{entities.ErrSystemPromptRequired, "validation.system_prompt_required"},
	{entities.ErrTemperatureRange, "validation.temperature_range"},
}

func validationMessage(c *gin.Context, err error) string {
	for _, v := range validationKeys {
		if errs.Is(err, v.err) {
			return dto.T(c, v.key)
		}
	}
	return errors.MessageOf(err)
}
