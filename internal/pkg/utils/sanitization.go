package utils

import (
	"medxbay-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterPatientRequest(request *requests.RegisterPatient) {
	request.Name = strings.TrimSpace(request.Name)
	request.Username = strings.ToLower(strings.TrimSpace(request.Username))
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeRegisterDoctorRequest(request *requests.RegisterDoctor) {
	request.Name = strings.TrimSpace(request.Name)
	request.Username = strings.ToLower(strings.TrimSpace(request.Username))
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Title = strings.TrimSpace(request.Title)
	request.Specialties = trimAll(request.Specialties)
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Identifier = strings.ToLower(strings.TrimSpace(request.Identifier))
}

func SanitizeUpdateDoctorProfileRequest(request *requests.UpdateDoctorProfile) {
	request.Name = strings.TrimSpace(request.Name)
	request.Title = strings.TrimSpace(request.Title)
	request.AboutMe = strings.TrimSpace(request.AboutMe)
	request.ClinicName = strings.TrimSpace(request.ClinicName)
	request.ClinicAddress = strings.TrimSpace(request.ClinicAddress)
	request.City = strings.TrimSpace(request.City)
	request.State = strings.TrimSpace(request.State)
	request.Country = strings.TrimSpace(request.Country)
	request.Specialties = trimAll(request.Specialties)
	request.Conditions = trimAll(request.Conditions)
	request.Languages = trimAll(request.Languages)
}

func SanitizeSearchDoctorsRequest(request *requests.SearchDoctors) {
	request.What = strings.TrimSpace(request.What)
	request.Where = strings.TrimSpace(request.Where)
	request.Specialty = strings.TrimSpace(request.Specialty)
	request.Language = strings.TrimSpace(request.Language)
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.ConsultationType = strings.ToLower(strings.TrimSpace(request.ConsultationType))
	request.Country = strings.TrimSpace(request.Country)
	request.State = strings.TrimSpace(request.State)
	request.City = strings.TrimSpace(request.City)
}

func SanitizeSendChatMessageRequest(request *requests.SendChatMessage) {
	request.Text = strings.TrimSpace(request.Text)
}

func SanitizeVerifyDoctorRequest(request *requests.VerifyDoctor) {
	request.Reason = strings.TrimSpace(request.Reason)
}

func SanitizeCreateBlogRequest(request *requests.CreateBlog) {
	request.Title = strings.TrimSpace(request.Title)
	request.Category = strings.TrimSpace(request.Category)
	request.Tags = trimAll(request.Tags)
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		trimmed = append(trimmed, strings.TrimSpace(v))
	}
	return trimmed
}
