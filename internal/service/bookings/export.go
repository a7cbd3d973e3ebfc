package bookings

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings/models"
)

const exportSheet = "Bookings"

// ExportContentType MIME-тип выгрузки
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeader = []interface{}{
	"Booking ID", "Date", "Time", "Service", "Customer", "Email", "Phone",
	"Vehicle", "Year", "Status", "Notes", "Created At",
}

// ExportBookings выгружает отфильтрованный список бронирований в XLSX
func (s *Service) ExportBookings(req *models.ListBookingsRequest) ([]byte, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ExportBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings := s.filtered(filter)
	services := s.serviceIndex()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("%w: ExportBookings - sheet: %v", ErrInternal, err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("%w: ExportBookings - header: %v", ErrInternal, err)
	}

	for i, b := range bookings {
		serviceName := b.ServiceID
		if svc, ok := services[b.ServiceID]; ok {
			serviceName = svc.Name
		}
		notes := ""
		if b.AdditionalNotes != nil {
			notes = *b.AdditionalNotes
		}

		row := []interface{}{
			b.ID,
			b.SlotID.Date,
			b.SlotID.TimeStart.Format12h(),
			serviceName,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.VehicleMake + " " + b.VehicleModel,
			b.VehicleYear,
			string(b.Status),
			notes,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("%w: ExportBookings - cell: %v", ErrInternal, err)
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("%w: ExportBookings - row %d: %v", ErrInternal, i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("ExportBookings: failed to render workbook: %v", err)
		return nil, fmt.Errorf("%w: ExportBookings - write: %v", ErrInternal, err)
	}

	s.logger.Info("ExportBookings: exported %d bookings", len(bookings))
	return buf.Bytes(), nil
}
