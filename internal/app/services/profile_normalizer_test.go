package services

import (
	"testing"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProfile_ScalarFields(t *testing.T) {
	patch, err := NormalizeProfile(NormalizeInput{RawFields: map[string]string{
		"fullName": "  Asha Verma ",
		"school":   "",
	}})
	require.NoError(t, err)

	require.NotNil(t, patch.FullName)
	assert.Equal(t, "  Asha Verma ", *patch.FullName, "scalars are kept verbatim")
	require.NotNil(t, patch.School)
	assert.Equal(t, "", *patch.School)
	assert.Nil(t, patch.MobileNo, "absent fields stay absent")
	assert.ElementsMatch(t, []string{"fullName", "school"}, patch.Fields())
}

func TestNormalizeProfile_ReadyToRelocate(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"false": false,
		"yes":   false,
		"TRUE":  false,
		"":      false,
	}
	for raw, want := range cases {
		patch, err := NormalizeProfile(NormalizeInput{RawFields: map[string]string{FieldReadyToRelocate: raw}})
		require.NoError(t, err)
		require.NotNil(t, patch.ReadyToRelocate, raw)
		assert.Equal(t, want, *patch.ReadyToRelocate, "readyToRelocate=%q", raw)
	}
}

func TestNormalizeProfile_BlankStructuredFieldsAreAbsent(t *testing.T) {
	patch, err := NormalizeProfile(NormalizeInput{RawFields: map[string]string{
		FieldEducation:      "   ",
		FieldExperience:     "",
		FieldCertifications: "",
		FieldSkills:         " ",
	}})
	require.NoError(t, err)
	assert.Nil(t, patch.Education)
	assert.Nil(t, patch.Experience)
	assert.Nil(t, patch.Certifications)
	assert.Nil(t, patch.Skills)
	assert.Empty(t, patch.Fields())
}

func TestNormalizeProfile_MalformedJSON(t *testing.T) {
	cases := []struct {
		field string
		value string
	}{
		{FieldEducation, "{not json"},
		{FieldEducation, `["tenth"]`},
		{FieldExperience, `"just text"`},
		{FieldCertifications, `{"name":"AWS"}`},
		{FieldSkills, `"go"`},
		{FieldSkills, `[{"name":"go"}]`},
	}
	for _, tc := range cases {
		t.Run(tc.field+"="+tc.value, func(t *testing.T) {
			_, err := NormalizeProfile(NormalizeInput{RawFields: map[string]string{tc.field: tc.value}})
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrMalformedPayload)

			ce, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, tc.field, ce.Details["field"])
		})
	}
}

func TestNormalizeProfile_Education(t *testing.T) {
	patch, err := NormalizeProfile(NormalizeInput{RawFields: map[string]string{
		FieldEducation: `{"tenth":{"percentage":92.5,"passingYear":2017},"graduation":{"degree":" B.Tech ","percentageOrCGPA":"8.1"}}`,
	}})
	require.NoError(t, err)
	require.NotNil(t, patch.Education)

	assert.Equal(t, "92.5", patch.Education.Tenth.Percentage)
	assert.Equal(t, "2017", patch.Education.Tenth.PassingYear)
	assert.Equal(t, "B.Tech", patch.Education.Graduation.Degree)
	assert.Equal(t, "8.1", patch.Education.Graduation.PercentageOrCGPA)
	assert.Equal(t, models.SchoolRecord{}, patch.Education.Twelfth)
}

func TestNormalizeProfile_ExperienceObjectOrArray(t *testing.T) {
	single, err := NormalizeProfile(NormalizeInput{RawFields: map[string]string{
		FieldExperience: `{"hasExperience":"true","organizationName":"Acme","duration":"6 months"}`,
	}})
	require.NoError(t, err)
	require.NotNil(t, single.Experience)
	require.Len(t, *single.Experience, 1)
	assert.True(t, (*single.Experience)[0].HasExperience)
	assert.Equal(t, "Acme", (*single.Experience)[0].OrganizationName)

	list, err := NormalizeProfile(NormalizeInput{RawFields: map[string]string{
		FieldExperience: `[{"hasExperience":true,"organizationName":"Acme"},{"hasExperience":"yes","organizationName":"Beta"}]`,
	}})
	require.NoError(t, err)
	require.Len(t, *list.Experience, 2)
	assert.True(t, (*list.Experience)[0].HasExperience)
	assert.False(t, (*list.Experience)[1].HasExperience)
}

func TestNormalizeExperience(t *testing.T) {
	worked := models.Experience{HasExperience: true, OrganizationName: "Acme"}
	blank := models.Experience{HasExperience: false, OrganizationName: "ignored"}

	tests := []struct {
		name string
		in   []models.Experience
		want []models.Experience
	}{
		{"empty becomes placeholder", nil, []models.Experience{models.NoExperience()}},
		{"single no-experience entry is reset", []models.Experience{blank}, []models.Experience{models.NoExperience()}},
		{"entries without experience are dropped", []models.Experience{blank, worked}, []models.Experience{worked}},
		{"all without experience becomes placeholder", []models.Experience{blank, blank}, []models.Experience{models.NoExperience()}},
		{"real entries are kept in order", []models.Experience{worked, worked}, []models.Experience{worked, worked}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeExperience(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestNormalizeProfile_CertificationImagePrecedence(t *testing.T) {
	patch, err := NormalizeProfile(NormalizeInput{
		RawFields: map[string]string{
			FieldCertifications: `[{"name":"AWS"},{"name":"GCP","image":"/uploads/submitted.png"},{"name":"Azure"},{"name":"CKA"}]`,
		},
		Uploaded: map[string]filestorage.StoredFile{
			CertificationImageField(0): {Path: "/uploads/new-0.png"},
			CertificationImageField(1): {Path: "/uploads/new-1.png"},
		},
		ExistingCertificationImages: []string{"/uploads/old-0.png", "/uploads/old-1.png", "/uploads/old-2.png"},
	})
	require.NoError(t, err)
	require.NotNil(t, patch.Certifications)

	assert.Equal(t, []models.Certification{
		{Name: "AWS", Image: "/uploads/new-0.png"},
		{Name: "GCP", Image: "/uploads/new-1.png"},
		{Name: "Azure", Image: "/uploads/old-2.png"},
		{Name: "CKA", Image: ""},
	}, *patch.Certifications)
}

func TestNormalizeProfile_CertificationLimit(t *testing.T) {
	_, err := NormalizeProfile(NormalizeInput{
		RawFields: map[string]string{FieldCertifications: `[{"name":"a"},{"name":"b"},{"name":"c"}]`},
		Options:   NormalizeOptions{MaxCertifications: 2},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	patch, err := NormalizeProfile(NormalizeInput{
		RawFields: map[string]string{FieldCertifications: `[]`},
		Options:   NormalizeOptions{MaxCertifications: 2},
	})
	require.NoError(t, err)
	require.NotNil(t, patch.Certifications)
	assert.Empty(t, *patch.Certifications)
}

func TestNormalizeProfile_Skills(t *testing.T) {
	patch, err := NormalizeProfile(NormalizeInput{RawFields: map[string]string{
		FieldSkills: `[" Go ", "SQL", "", "Go", 42, null]`,
	}})
	require.NoError(t, err)
	require.NotNil(t, patch.Skills)
	assert.Equal(t, []string{"Go", "SQL", "42"}, *patch.Skills)
}

func TestNormalizeProfile_ProfilePhoto(t *testing.T) {
	opts := NormalizeOptions{LegacyHostPrefix: "http://localhost:3000"}

	stripped, err := NormalizeProfile(NormalizeInput{
		RawFields: map[string]string{FieldProfilePhoto: "http://localhost:3000/uploads/me.png"},
		Options:   opts,
	})
	require.NoError(t, err)
	require.NotNil(t, stripped.ProfilePhoto)
	assert.Equal(t, "/uploads/me.png", *stripped.ProfilePhoto)

	uploaded, err := NormalizeProfile(NormalizeInput{
		RawFields: map[string]string{FieldProfilePhoto: "http://localhost:3000/uploads/me.png"},
		Uploaded:  map[string]filestorage.StoredFile{FieldProfilePhoto: {Path: "/uploads/fresh.png"}},
		Options:   opts,
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/fresh.png", *uploaded.ProfilePhoto)
}

func TestNormalizeProfile_ResumeOnlyFromUpload(t *testing.T) {
	patch, err := NormalizeProfile(NormalizeInput{RawFields: map[string]string{FieldResume: "/uploads/someone-else.pdf"}})
	require.NoError(t, err)
	assert.Nil(t, patch.Resume)

	patch, err = NormalizeProfile(NormalizeInput{
		Uploaded: map[string]filestorage.StoredFile{FieldResume: {Path: "/uploads/cv.pdf"}},
	})
	require.NoError(t, err)
	require.NotNil(t, patch.Resume)
	assert.Equal(t, "/uploads/cv.pdf", *patch.Resume)
}

func TestProfilePatch_ApplyTo(t *testing.T) {
	photo := "/uploads/old.png"
	account := &models.Account{
		FullName:     "Old Name",
		School:       "Old School",
		Skills:       []string{"Java"},
		ProfilePhoto: &photo,
	}

	name := "New Name"
	empty := ""
	skills := []string{"Go"}
	patch := &ProfilePatch{FullName: &name, ProfilePhoto: &empty, Skills: &skills}
	patch.ApplyTo(account)

	assert.Equal(t, "New Name", account.FullName)
	assert.Equal(t, "Old School", account.School)
	assert.Equal(t, []string{"Go"}, account.Skills)
	assert.Nil(t, account.ProfilePhoto, "an empty reference clears the file")

	skills[0] = "Rust"
	assert.Equal(t, []string{"Go"}, account.Skills, "applied slices are copies")
}
