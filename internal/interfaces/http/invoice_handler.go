package http

import (
	"github.com/gofiber/fiber/v2"

	appbilling "github.com/vyapar-labs/gstbill-api/internal/application/billing"
	"github.com/vyapar-labs/gstbill-api/internal/application/dto"
	"github.com/vyapar-labs/gstbill-api/internal/domain"
	"github.com/vyapar-labs/gstbill-api/internal/domain/billing"
)

// InvoiceHandler handles billing HTTP requests (protected).
type InvoiceHandler struct {
	uc       *appbilling.InvoiceUseCase
	pdfUC    *appbilling.PDFUseCase
	exportUC *appbilling.ExportUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *appbilling.InvoiceUseCase, pdfUC *appbilling.PDFUseCase, exportUC *appbilling.ExportUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC, exportUC: exportUC}
}

// validationResponse surfaces a billing ValidationError as a form-level error:
// Field names the offending field and Line the offending row (1-based).
func validationResponse(c *fiber.Ctx, ve *billing.ValidationError) error {
	status := fiber.StatusBadRequest
	if ve.Kind == billing.KindInsufficientStock {
		status = fiber.StatusConflict
	}
	resp := dto.ErrorResponse{Code: string(ve.Kind), Message: ve.Message, Field: ve.Field}
	if ve.Index >= 0 {
		line := ve.Index + 1
		resp.Line = &line
	}
	return c.Status(status).JSON(resp)
}

// Create runs the full billing pipeline and persists the invoice.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.CreateInvoice(c.Context(), companyID, in)
	if err != nil {
		if ve, ok := billing.AsValidation(err); ok {
			return validationResponse(c, ve)
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown invoice type or missing customer"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock was depleted by a concurrent sale"})
		}
		return mapDomainError(c, err, "customer, company or product not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search lists invoices by customer name (empty name matches all).
// GET /api/invoices/customer?customerName=...
func (h *InvoiceHandler) Search(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	out, err := h.uc.SearchByCustomer(c.Context(), companyID, c.Query("customerName"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByType lists invoices of one document type, newest first.
// GET /api/invoices/type/:type
func (h *InvoiceHandler) ListByType(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListByType(c.Context(), companyID, c.Params("type"), limit, offset)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown invoice type"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID returns an invoice with full line detail and derived HSN summary.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id is required"})
	}
	out, err := h.uc.GetInvoice(c.Context(), companyID, id)
	if err != nil {
		return mapDomainError(c, err, "invoice not found")
	}
	return c.JSON(out)
}

// UpdatePayment re-derives the payment state for a new received amount.
// PUT /api/invoices/:id
func (h *InvoiceHandler) UpdatePayment(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	id := c.Params("id")
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdatePayment(c.Context(), companyID, id, in)
	if err != nil {
		if ve, ok := billing.AsValidation(err); ok {
			return validationResponse(c, ve)
		}
		return mapDomainError(c, err, "invoice not found")
	}
	return c.JSON(out)
}

// GetPDF renders the printable invoice.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) GetPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	id := c.Params("id")
	pdfBytes, err := h.pdfUC.GenerateInvoicePDF(c.Context(), companyID, id)
	if err != nil {
		return mapDomainError(c, err, "invoice not found")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="invoice-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}

// GetTallyXML renders the Tally import voucher.
// GET /api/invoices/:id/tally.xml
func (h *InvoiceHandler) GetTallyXML(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	id := c.Params("id")
	xmlBytes, err := h.exportUC.ExportTallyXML(c.Context(), companyID, id)
	if err != nil {
		return mapDomainError(c, err, "invoice not found")
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invoice-`+id+`.xml"`)
	return c.Send(xmlBytes)
}
