package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/campusconnect/placement-api/internal/app/models"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
)

// Multipart field names of the profile form
const (
	FieldEducation       = "education"
	FieldExperience      = "experience"
	FieldCertifications  = "certifications"
	FieldSkills          = "skills"
	FieldReadyToRelocate = "readyToRelocate"
	FieldProfilePhoto    = "profilePhoto"
	FieldResume          = "resume"

	certificationImagePrefix = "certificationImage-"
)

// CertificationImageField returns the upload field carrying the image of certification i
func CertificationImageField(i int) string {
	return certificationImagePrefix + strconv.Itoa(i)
}

// scalarFields are the plain text profile attributes accepted from a profile form
var scalarFields = []struct {
	name   string
	target func(*ProfilePatch) **string
}{
	{"fullName", func(p *ProfilePatch) **string { return &p.FullName }},
	{"mobileNo", func(p *ProfilePatch) **string { return &p.MobileNo }},
	{"whatsappNo", func(p *ProfilePatch) **string { return &p.WhatsappNo }},
	{"mailId", func(p *ProfilePatch) **string { return &p.MailID }},
	{"fatherName", func(p *ProfilePatch) **string { return &p.FatherName }},
	{"fatherNumber", func(p *ProfilePatch) **string { return &p.FatherNumber }},
	{"school", func(p *ProfilePatch) **string { return &p.School }},
	{"existingBacklogs", func(p *ProfilePatch) **string { return &p.ExistingBacklogs }},
	{"areaOfInterest", func(p *ProfilePatch) **string { return &p.AreaOfInterest }},
}

// NormalizeOptions carries the configurable rules of the normalizer
type NormalizeOptions struct {
	// LegacyHostPrefix is stripped from submitted profile photo URLs
	LegacyHostPrefix string
	// MaxCertifications bounds the certification list
	MaxCertifications int
}

// NormalizeInput is a raw profile form: text fields plus files already stored
type NormalizeInput struct {
	RawFields map[string]string
	Uploaded  map[string]filestorage.StoredFile
	// ExistingCertificationImages are the stored images by position, kept when not replaced
	ExistingCertificationImages []string
	Options                     NormalizeOptions
}

// ProfilePatch is a canonical partial update. A nil field was absent from the input
// and must leave the stored value untouched.
type ProfilePatch struct {
	FullName         *string
	MobileNo         *string
	WhatsappNo       *string
	MailID           *string
	FatherName       *string
	FatherNumber     *string
	School           *string
	ExistingBacklogs *string
	AreaOfInterest   *string
	ReadyToRelocate  *bool

	Education      *models.Education
	Experience     *[]models.Experience
	Certifications *[]models.Certification
	Skills         *[]string

	ProfilePhoto *string
	Resume       *string
}

// NormalizeProfile turns a raw profile form into a ProfilePatch. It performs no I/O.
func NormalizeProfile(in NormalizeInput) (*ProfilePatch, error) {
	patch := &ProfilePatch{}
	raw := in.RawFields

	for _, f := range scalarFields {
		if v, ok := raw[f.name]; ok {
			value := v
			*f.target(patch) = &value
		}
	}

	if v, ok := raw[FieldReadyToRelocate]; ok {
		relocate := v == "true"
		patch.ReadyToRelocate = &relocate
	}

	if v, ok := structuredField(raw, FieldEducation); ok {
		edu, err := parseEducation(v)
		if err != nil {
			return nil, apperrors.NewMalformedPayloadError(FieldEducation, err)
		}
		patch.Education = edu
	}

	if v, ok := structuredField(raw, FieldExperience); ok {
		exp, err := parseExperience(v)
		if err != nil {
			return nil, apperrors.NewMalformedPayloadError(FieldExperience, err)
		}
		patch.Experience = &exp
	}

	if v, ok := structuredField(raw, FieldCertifications); ok {
		certs, err := parseCertifications(v, in.ExistingCertificationImages, in.Uploaded)
		if err != nil {
			return nil, apperrors.NewMalformedPayloadError(FieldCertifications, err)
		}
		if limit := in.Options.MaxCertifications; limit > 0 && len(certs) > limit {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("At most %d certifications are allowed", limit),
				map[string]string{FieldCertifications: fmt.Sprintf("certifications must contain at most %d items", limit)},
			)
		}
		patch.Certifications = &certs
	}

	if v, ok := structuredField(raw, FieldSkills); ok {
		skills, err := parseSkills(v)
		if err != nil {
			return nil, apperrors.NewMalformedPayloadError(FieldSkills, err)
		}
		patch.Skills = &skills
	}

	if file, ok := in.Uploaded[FieldProfilePhoto]; ok {
		photo := file.Path
		patch.ProfilePhoto = &photo
	} else if v, ok := raw[FieldProfilePhoto]; ok {
		photo := strings.TrimSpace(v)
		if prefix := in.Options.LegacyHostPrefix; prefix != "" {
			photo = strings.TrimPrefix(photo, prefix)
		}
		patch.ProfilePhoto = &photo
	}

	if file, ok := in.Uploaded[FieldResume]; ok {
		resume := file.Path
		patch.Resume = &resume
	}

	return patch, nil
}

// NormalizeExperience enforces that experience is never empty: either the single
// no-experience entry or only entries that describe real experience.
func NormalizeExperience(entries []models.Experience) []models.Experience {
	if len(entries) == 1 && !entries[0].HasExperience {
		return []models.Experience{models.NoExperience()}
	}

	kept := make([]models.Experience, 0, len(entries))
	for _, e := range entries {
		if e.HasExperience {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return []models.Experience{models.NoExperience()}
	}
	return kept
}

// ApplyTo merges the present fields into the account
func (p *ProfilePatch) ApplyTo(a *models.Account) {
	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&a.FullName, p.FullName)
	assign(&a.MobileNo, p.MobileNo)
	assign(&a.WhatsappNo, p.WhatsappNo)
	assign(&a.MailID, p.MailID)
	assign(&a.FatherName, p.FatherName)
	assign(&a.FatherNumber, p.FatherNumber)
	assign(&a.School, p.School)
	assign(&a.ExistingBacklogs, p.ExistingBacklogs)
	assign(&a.AreaOfInterest, p.AreaOfInterest)

	if p.ReadyToRelocate != nil {
		a.ReadyToRelocate = *p.ReadyToRelocate
	}
	if p.Education != nil {
		edu := *p.Education
		a.Education = &edu
	}
	if p.Experience != nil {
		a.Experience = append([]models.Experience{}, *p.Experience...)
	}
	if p.Certifications != nil {
		a.Certifications = append([]models.Certification{}, *p.Certifications...)
	}
	if p.Skills != nil {
		a.Skills = append([]string{}, *p.Skills...)
	}
	if p.ProfilePhoto != nil {
		a.ProfilePhoto = optionalRef(*p.ProfilePhoto)
	}
	if p.Resume != nil {
		a.Resume = optionalRef(*p.Resume)
	}
}

// Fields lists the names of the present fields
func (p *ProfilePatch) Fields() []string {
	var fields []string
	for _, f := range scalarFields {
		if *f.target(p) != nil {
			fields = append(fields, f.name)
		}
	}
	optional := []struct {
		name    string
		present bool
	}{
		{FieldReadyToRelocate, p.ReadyToRelocate != nil},
		{FieldEducation, p.Education != nil},
		{FieldExperience, p.Experience != nil},
		{FieldCertifications, p.Certifications != nil},
		{FieldSkills, p.Skills != nil},
		{FieldProfilePhoto, p.ProfilePhoto != nil},
		{FieldResume, p.Resume != nil},
	}
	for _, o := range optional {
		if o.present {
			fields = append(fields, o.name)
		}
	}
	return fields
}

func optionalRef(ref string) *string {
	if ref == "" {
		return nil
	}
	return &ref
}

// structuredField returns a JSON encoded form field; blank values count as absent
func structuredField(raw map[string]string, name string) (string, bool) {
	v, ok := raw[name]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// flexString accepts JSON strings, numbers, booleans and null as text
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return fmt.Errorf("expected a text value, got %s", data[:1])
	default:
		*s = flexString(data)
	}
	return nil
}

func (s flexString) String() string {
	return strings.TrimSpace(string(s))
}

// flexBool is true only for JSON true or the string "true"
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*b = flexBool(bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte(`"true"`)))
	return nil
}

type rawSchool struct {
	Percentage  flexString `json:"percentage"`
	PassingYear flexString `json:"passingYear"`
}

type rawDegree struct {
	Degree           flexString `json:"degree"`
	PercentageOrCGPA flexString `json:"percentageOrCGPA"`
	PassingYear      flexString `json:"passingYear"`
}

type rawEducation struct {
	Tenth      rawSchool `json:"tenth"`
	Twelfth    rawSchool `json:"twelfth"`
	Graduation rawDegree `json:"graduation"`
	Masters    rawDegree `json:"masters"`
}

func parseEducation(v string) (*models.Education, error) {
	var raw rawEducation
	if err := decodeJSONObject(v, &raw); err != nil {
		return nil, err
	}
	school := func(r rawSchool) models.SchoolRecord {
		return models.SchoolRecord{Percentage: r.Percentage.String(), PassingYear: r.PassingYear.String()}
	}
	degree := func(r rawDegree) models.DegreeRecord {
		return models.DegreeRecord{
			Degree:           r.Degree.String(),
			PercentageOrCGPA: r.PercentageOrCGPA.String(),
			PassingYear:      r.PassingYear.String(),
		}
	}
	return &models.Education{
		Tenth:      school(raw.Tenth),
		Twelfth:    school(raw.Twelfth),
		Graduation: degree(raw.Graduation),
		Masters:    degree(raw.Masters),
	}, nil
}

type rawExperience struct {
	HasExperience    flexBool   `json:"hasExperience"`
	OrganizationName flexString `json:"organizationName"`
	Duration         flexString `json:"duration"`
	Details          flexString `json:"details"`
}

func (r rawExperience) toModel() models.Experience {
	return models.Experience{
		HasExperience:    bool(r.HasExperience),
		OrganizationName: r.OrganizationName.String(),
		Duration:         r.Duration.String(),
		Details:          r.Details.String(),
	}
}

// parseExperience accepts a single object or an array of objects
func parseExperience(v string) ([]models.Experience, error) {
	trimmed := strings.TrimSpace(v)
	if !json.Valid([]byte(trimmed)) {
		return nil, fmt.Errorf("invalid JSON")
	}

	var raws []rawExperience
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal([]byte(trimmed), &raws); err != nil {
			return nil, err
		}
	case '{':
		var single rawExperience
		if err := json.Unmarshal([]byte(trimmed), &single); err != nil {
			return nil, err
		}
		raws = []rawExperience{single}
	default:
		return nil, fmt.Errorf("expected an object or an array of objects")
	}

	out := make([]models.Experience, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.toModel())
	}
	return out, nil
}

type rawCertification struct {
	Name  flexString `json:"name"`
	Image flexString `json:"image"`
}

// parseCertifications keeps order; index i takes the uploaded image i, else the
// submitted image, else the stored image at the same position.
func parseCertifications(v string, existing []string, uploaded map[string]filestorage.StoredFile) ([]models.Certification, error) {
	var raws []rawCertification
	if err := decodeJSONArray(v, &raws); err != nil {
		return nil, err
	}

	certs := make([]models.Certification, 0, len(raws))
	for i, r := range raws {
		image := r.Image.String()
		if image == "" && i < len(existing) {
			image = existing[i]
		}
		if file, ok := uploaded[CertificationImageField(i)]; ok {
			image = file.Path
		}
		certs = append(certs, models.Certification{Name: r.Name.String(), Image: image})
	}
	return certs, nil
}

// parseSkills drops blanks and duplicates, keeping the first occurrence
func parseSkills(v string) ([]string, error) {
	var raws []flexString
	if err := decodeJSONArray(v, &raws); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(raws))
	skills := make([]string, 0, len(raws))
	for _, r := range raws {
		skill := r.String()
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}
	return skills, nil
}

func decodeJSONObject(v string, dst interface{}) error {
	trimmed := strings.TrimSpace(v)
	if !json.Valid([]byte(trimmed)) {
		return fmt.Errorf("invalid JSON")
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("expected an object")
	}
	return json.Unmarshal([]byte(trimmed), dst)
}

func decodeJSONArray(v string, dst interface{}) error {
	trimmed := strings.TrimSpace(v)
	if !json.Valid([]byte(trimmed)) {
		return fmt.Errorf("invalid JSON")
	}
	if trimmed[0] != '[' {
		return fmt.Errorf("expected an array")
	}
	return json.Unmarshal([]byte(trimmed), dst)
}
