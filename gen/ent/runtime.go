// Code generated by ent, DO NOT EDIT.

package ent

import (
	"mediafetch/db/ent/schema"
	"mediafetch/gen/ent/apikey"
	"mediafetch/gen/ent/fetchjob"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescKey is the schema descriptor for key field.
	apikeyDescKey := apikeyFields[1].Descriptor()
	// apikey.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	apikey.KeyValidator = apikeyDescKey.Validators[0].(func(string) error)
	// apikeyDescIsActive is the schema descriptor for is_active field.
	apikeyDescIsActive := apikeyFields[2].Descriptor()
	// apikey.DefaultIsActive holds the default value on creation for the is_active field.
	apikey.DefaultIsActive = apikeyDescIsActive.Default.(bool)
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[3].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	// apikeyDescID is the schema descriptor for id field.
	apikeyDescID := apikeyFields[0].Descriptor()
	// apikey.DefaultID holds the default value on creation for the id field.
	apikey.DefaultID = apikeyDescID.Default.(func() uuid.UUID)
	fetchjobFields := schema.FetchJob{}.Fields()
	_ = fetchjobFields
	// fetchjobDescURL is the schema descriptor for url field.
	fetchjobDescURL := fetchjobFields[1].Descriptor()
	// fetchjob.URLValidator is a validator for the "url" field. It is called by the builders before save.
	fetchjob.URLValidator = fetchjobDescURL.Validators[0].(func(string) error)
	// fetchjobDescPlatform is the schema descriptor for platform field.
	fetchjobDescPlatform := fetchjobFields[2].Descriptor()
	// fetchjob.PlatformValidator is a validator for the "platform" field. It is called by the builders before save.
	fetchjob.PlatformValidator = fetchjobDescPlatform.Validators[0].(func(string) error)
	// fetchjobDescStatus is the schema descriptor for status field.
	fetchjobDescStatus := fetchjobFields[3].Descriptor()
	// fetchjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	fetchjob.StatusValidator = fetchjobDescStatus.Validators[0].(func(string) error)
	// fetchjobDescResultBytes is the schema descriptor for result_bytes field.
	fetchjobDescResultBytes := fetchjobFields[8].Descriptor()
	// fetchjob.DefaultResultBytes holds the default value on creation for the result_bytes field.
	fetchjob.DefaultResultBytes = fetchjobDescResultBytes.Default.(int64)
	// fetchjobDescVideoDone is the schema descriptor for video_done field.
	fetchjobDescVideoDone := fetchjobFields[9].Descriptor()
	// fetchjob.DefaultVideoDone holds the default value on creation for the video_done field.
	fetchjob.DefaultVideoDone = fetchjobDescVideoDone.Default.(bool)
	// fetchjobDescAudioDone is the schema descriptor for audio_done field.
	fetchjobDescAudioDone := fetchjobFields[10].Descriptor()
	// fetchjob.DefaultAudioDone holds the default value on creation for the audio_done field.
	fetchjob.DefaultAudioDone = fetchjobDescAudioDone.Default.(bool)
	// fetchjobDescMergeDone is the schema descriptor for merge_done field.
	fetchjobDescMergeDone := fetchjobFields[11].Descriptor()
	// fetchjob.DefaultMergeDone holds the default value on creation for the merge_done field.
	fetchjob.DefaultMergeDone = fetchjobDescMergeDone.Default.(bool)
	// fetchjobDescCreatedAt is the schema descriptor for created_at field.
	fetchjobDescCreatedAt := fetchjobFields[12].Descriptor()
	// fetchjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	fetchjob.DefaultCreatedAt = fetchjobDescCreatedAt.Default.(func() time.Time)
}
