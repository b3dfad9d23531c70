package service

// CodeGenerator produces one-time verification codes.
type CodeGenerator interface {
	// Generate returns a fresh six digit code.
	Generate() (string, error)
}
