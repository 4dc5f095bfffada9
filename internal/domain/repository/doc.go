// Package repository declares the data-access capabilities the usecases depend on,
// one interface per entity.
package repository

//go:generate mockgen -source=appointment_repository.go -destination=mocks/mock_appointment_repository.go -package=mocks
//go:generate mockgen -source=client_repository.go -destination=mocks/mock_client_repository.go -package=mocks
//go:generate mockgen -source=dentist_repository.go -destination=mocks/mock_dentist_repository.go -package=mocks
//go:generate mockgen -source=service_repository.go -destination=mocks/mock_service_repository.go -package=mocks
//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks
//go:generate mockgen -source=audit_log_repository.go -destination=mocks/mock_audit_log_repository.go -package=mocks
