// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arulmurugan/vidhai/ent/attempt"
	"github.com/arulmurugan/vidhai/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescTakenAt is the schema descriptor for taken_at field.
	attemptDescTakenAt := attemptFields[1].Descriptor()
	// attempt.DefaultTakenAt holds the default value on creation for the taken_at field.
	attempt.DefaultTakenAt = attemptDescTakenAt.Default.(func() time.Time)
	// attemptDescTestType is the schema descriptor for test_type field.
	attemptDescTestType := attemptFields[2].Descriptor()
	// attempt.TestTypeValidator is a validator for the "test_type" field. It is called by the builders before save.
	attempt.TestTypeValidator = attemptDescTestType.Validators[0].(func(string) error)
	// attemptDescSubject is the schema descriptor for subject field.
	attemptDescSubject := attemptFields[3].Descriptor()
	// attempt.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	attempt.SubjectValidator = attemptDescSubject.Validators[0].(func(string) error)
	// attemptDescLanguage is the schema descriptor for language field.
	attemptDescLanguage := attemptFields[6].Descriptor()
	// attempt.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	attempt.LanguageValidator = attemptDescLanguage.Validators[0].(func(string) error)
	// attemptDescID is the schema descriptor for id field.
	attemptDescID := attemptFields[0].Descriptor()
	// attempt.DefaultID holds the default value on creation for the id field.
	attempt.DefaultID = attemptDescID.Default.(func() uuid.UUID)
}
