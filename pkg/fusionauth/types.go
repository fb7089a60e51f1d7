package fusionauth

// Instants are FusionAuth's millisecond-since-epoch timestamps. They are
// carried as int64 rather than time.Time so round trips preserve the wire
// value exactly.

// User represents a FusionAuth user.
type User struct {
	ID                     string                 `json:"id,omitempty"                     yaml:"id,omitempty"`
	Active                 bool                   `json:"active,omitempty"                 yaml:"active,omitempty"`
	BirthDate              string                 `json:"birthDate,omitempty"              yaml:"birthDate,omitempty"`
	Data                   map[string]interface{} `json:"data,omitempty"                   yaml:"data,omitempty"`
	Email                  string                 `json:"email,omitempty"                  yaml:"email,omitempty"`
	Expiry                 int64                  `json:"expiry,omitempty"                 yaml:"expiry,omitempty"`
	FirstName              string                 `json:"firstName,omitempty"              yaml:"firstName,omitempty"`
	FullName               string                 `json:"fullName,omitempty"               yaml:"fullName,omitempty"`
	ImageURL               string                 `json:"imageUrl,omitempty"               yaml:"imageUrl,omitempty"`
	InsertInstant          int64                  `json:"insertInstant,omitempty"          yaml:"insertInstant,omitempty"`
	LastLoginInstant       int64                  `json:"lastLoginInstant,omitempty"       yaml:"lastLoginInstant,omitempty"`
	LastName               string                 `json:"lastName,omitempty"               yaml:"lastName,omitempty"`
	MiddleName             string                 `json:"middleName,omitempty"             yaml:"middleName,omitempty"`
	MobilePhone            string                 `json:"mobilePhone,omitempty"            yaml:"mobilePhone,omitempty"`
	Password               string                 `json:"password,omitempty"               yaml:"password,omitempty"`
	PasswordChangeRequired bool                   `json:"passwordChangeRequired,omitempty" yaml:"passwordChangeRequired,omitempty"`
	Registrations          []UserRegistration     `json:"registrations,omitempty"          yaml:"registrations,omitempty"`
	TenantID               string                 `json:"tenantId,omitempty"               yaml:"tenantId,omitempty"`
	Timezone               string                 `json:"timezone,omitempty"               yaml:"timezone,omitempty"`
	Username               string                 `json:"username,omitempty"               yaml:"username,omitempty"`
	Verified               bool                   `json:"verified,omitempty"               yaml:"verified,omitempty"`
}

// UserRequest represents a request to create or update a user.
type UserRequest struct {
	// ApplicationID optionally registers the user for an application in the
	// same call.
	ApplicationID string `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	// SendSetPasswordEmail asks FusionAuth to email a set-password link
	// instead of requiring a password in the request.
	SendSetPasswordEmail bool `json:"sendSetPasswordEmail,omitempty" yaml:"sendSetPasswordEmail,omitempty"`
	// SkipVerification suppresses the verification email.
	SkipVerification bool  `json:"skipVerification,omitempty" yaml:"skipVerification,omitempty"`
	User             *User `json:"user,omitempty"             yaml:"user,omitempty"`
}

// UserResponse represents user retrieval and mutation responses.
type UserResponse struct {
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
	User  *User  `json:"user,omitempty"  yaml:"user,omitempty"`
	Users []User `json:"users,omitempty" yaml:"users,omitempty"`
}

// UserRegistration represents a user's registration for an application.
type UserRegistration struct {
	ID               string                 `json:"id,omitempty"               yaml:"id,omitempty"`
	ApplicationID    string                 `json:"applicationId,omitempty"    yaml:"applicationId,omitempty"`
	Data             map[string]interface{} `json:"data,omitempty"             yaml:"data,omitempty"`
	InsertInstant    int64                  `json:"insertInstant,omitempty"    yaml:"insertInstant,omitempty"`
	LastLoginInstant int64                  `json:"lastLoginInstant,omitempty" yaml:"lastLoginInstant,omitempty"`
	Roles            []string               `json:"roles,omitempty"            yaml:"roles,omitempty"`
	Timezone         string                 `json:"timezone,omitempty"         yaml:"timezone,omitempty"`
	Username         string                 `json:"username,omitempty"         yaml:"username,omitempty"`
	Verified         bool                   `json:"verified,omitempty"         yaml:"verified,omitempty"`
}

// RegistrationRequest represents a request to create or update a registration.
type RegistrationRequest struct {
	Registration *UserRegistration `json:"registration,omitempty" yaml:"registration,omitempty"`
	// SendSetPasswordEmail and SkipVerification apply when the call also
	// creates the user.
	SendSetPasswordEmail bool  `json:"sendSetPasswordEmail,omitempty" yaml:"sendSetPasswordEmail,omitempty"`
	SkipVerification     bool  `json:"skipVerification,omitempty"     yaml:"skipVerification,omitempty"`
	User                 *User `json:"user,omitempty"                 yaml:"user,omitempty"`
}

// RegistrationResponse represents registration responses.
type RegistrationResponse struct {
	Registration *UserRegistration `json:"registration,omitempty" yaml:"registration,omitempty"`
	Token        string            `json:"token,omitempty"        yaml:"token,omitempty"`
	User         *User             `json:"user,omitempty"         yaml:"user,omitempty"`
}

// Application represents a FusionAuth application.
type Application struct {
	ID                 string                 `json:"id,omitempty"                 yaml:"id,omitempty"`
	Active             bool                   `json:"active,omitempty"             yaml:"active,omitempty"`
	Data               map[string]interface{} `json:"data,omitempty"               yaml:"data,omitempty"`
	InsertInstant      int64                  `json:"insertInstant,omitempty"      yaml:"insertInstant,omitempty"`
	LastUpdateInstant  int64                  `json:"lastUpdateInstant,omitempty"  yaml:"lastUpdateInstant,omitempty"`
	Name               string                 `json:"name,omitempty"               yaml:"name,omitempty"`
	OAuthConfiguration *OAuthConfiguration    `json:"oauthConfiguration,omitempty" yaml:"oauthConfiguration,omitempty"`
	Roles              []ApplicationRole      `json:"roles,omitempty"              yaml:"roles,omitempty"`
	TenantID           string                 `json:"tenantId,omitempty"           yaml:"tenantId,omitempty"`
}

// ApplicationRole represents a role defined by an application.
type ApplicationRole struct {
	ID          string `json:"id,omitempty"          yaml:"id,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	IsDefault   bool   `json:"isDefault,omitempty"   yaml:"isDefault,omitempty"`
	IsSuperRole bool   `json:"isSuperRole,omitempty" yaml:"isSuperRole,omitempty"`
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
}

// OAuthConfiguration represents an application's OAuth2 configuration.
type OAuthConfiguration struct {
	AuthorizedRedirectURLs      []string `json:"authorizedRedirectURLs,omitempty"      yaml:"authorizedRedirectURLs,omitempty"`
	ClientID                    string   `json:"clientId,omitempty"                    yaml:"clientId,omitempty"`
	ClientSecret                string   `json:"clientSecret,omitempty"                yaml:"clientSecret,omitempty"`
	EnabledGrants               []string `json:"enabledGrants,omitempty"               yaml:"enabledGrants,omitempty"`
	LogoutURL                   string   `json:"logoutURL,omitempty"                   yaml:"logoutURL,omitempty"`
	RequireClientAuthentication bool     `json:"requireClientAuthentication,omitempty" yaml:"requireClientAuthentication,omitempty"`
}

// ApplicationRequest represents a request to create or update an application
// or one of its roles.
type ApplicationRequest struct {
	Application *Application     `json:"application,omitempty" yaml:"application,omitempty"`
	Role        *ApplicationRole `json:"role,omitempty"        yaml:"role,omitempty"`
}

// ApplicationResponse represents application responses.
type ApplicationResponse struct {
	Application  *Application     `json:"application,omitempty"  yaml:"application,omitempty"`
	Applications []Application    `json:"applications,omitempty" yaml:"applications,omitempty"`
	Role         *ApplicationRole `json:"role,omitempty"         yaml:"role,omitempty"`
}

// OAuthConfigurationResponse represents an OAuth configuration retrieval.
type OAuthConfigurationResponse struct {
	HTTPSessionMaxInactiveInterval int                 `json:"httpSessionMaxInactiveInterval,omitempty" yaml:"httpSessionMaxInactiveInterval,omitempty"`
	LogoutURL                      string              `json:"logoutURL,omitempty"                      yaml:"logoutURL,omitempty"`
	OAuthConfiguration             *OAuthConfiguration `json:"oauthConfiguration,omitempty"             yaml:"oauthConfiguration,omitempty"`
}

// Tenant represents a FusionAuth tenant.
type Tenant struct {
	ID            string                 `json:"id,omitempty"            yaml:"id,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"          yaml:"data,omitempty"`
	InsertInstant int64                  `json:"insertInstant,omitempty" yaml:"insertInstant,omitempty"`
	Issuer        string                 `json:"issuer,omitempty"        yaml:"issuer,omitempty"`
	Name          string                 `json:"name,omitempty"          yaml:"name,omitempty"`
	ThemeID       string                 `json:"themeId,omitempty"       yaml:"themeId,omitempty"`
}

// TenantRequest represents a request to create or update a tenant.
type TenantRequest struct {
	// SourceTenantID clones configuration from an existing tenant on create.
	SourceTenantID string  `json:"sourceTenantId,omitempty" yaml:"sourceTenantId,omitempty"`
	Tenant         *Tenant `json:"tenant,omitempty"         yaml:"tenant,omitempty"`
}

// TenantResponse represents tenant responses.
type TenantResponse struct {
	Tenant  *Tenant  `json:"tenant,omitempty"  yaml:"tenant,omitempty"`
	Tenants []Tenant `json:"tenants,omitempty" yaml:"tenants,omitempty"`
}

// Group represents a FusionAuth group.
type Group struct {
	ID            string                       `json:"id,omitempty"            yaml:"id,omitempty"`
	Data          map[string]interface{}       `json:"data,omitempty"          yaml:"data,omitempty"`
	InsertInstant int64                        `json:"insertInstant,omitempty" yaml:"insertInstant,omitempty"`
	Name          string                       `json:"name,omitempty"          yaml:"name,omitempty"`
	Roles         map[string][]ApplicationRole `json:"roles,omitempty"         yaml:"roles,omitempty"`
	TenantID      string                       `json:"tenantId,omitempty"      yaml:"tenantId,omitempty"`
}

// GroupRequest represents a request to create or update a group.
type GroupRequest struct {
	Group *Group `json:"group,omitempty" yaml:"group,omitempty"`
	// RoleIDs assigns application roles to the group.
	RoleIDs []string `json:"roleIds,omitempty" yaml:"roleIds,omitempty"`
}

// GroupResponse represents group responses.
type GroupResponse struct {
	Group  *Group  `json:"group,omitempty"  yaml:"group,omitempty"`
	Groups []Group `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// GroupMember represents a user's membership in a group.
type GroupMember struct {
	ID            string                 `json:"id,omitempty"            yaml:"id,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"          yaml:"data,omitempty"`
	GroupID       string                 `json:"groupId,omitempty"       yaml:"groupId,omitempty"`
	InsertInstant int64                  `json:"insertInstant,omitempty" yaml:"insertInstant,omitempty"`
	UserID        string                 `json:"userId,omitempty"        yaml:"userId,omitempty"`
}

// MemberRequest represents a request to add group members, keyed by group id.
type MemberRequest struct {
	Members map[string][]GroupMember `json:"members,omitempty" yaml:"members,omitempty"`
}

// MemberResponse represents group membership responses.
type MemberResponse struct {
	Members map[string][]GroupMember `json:"members,omitempty" yaml:"members,omitempty"`
}

// MemberDeleteRequest represents a request to remove group members.
type MemberDeleteRequest struct {
	MemberIDs []string `json:"memberIds,omitempty" yaml:"memberIds,omitempty"`
	// Members removes by group id and user id rather than member id.
	Members map[string][]string `json:"members,omitempty" yaml:"members,omitempty"`
}

// LoginRequest represents a credential login.
type LoginRequest struct {
	ApplicationID string `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	IPAddress     string `json:"ipAddress,omitempty"     yaml:"ipAddress,omitempty"`
	LoginID       string `json:"loginId,omitempty"       yaml:"loginId,omitempty"`
	// NoJWT suppresses token generation for the call.
	NoJWT             bool   `json:"noJWT,omitempty"             yaml:"noJWT,omitempty"`
	OneTimePassword   string `json:"oneTimePassword,omitempty"   yaml:"oneTimePassword,omitempty"`
	Password          string `json:"password,omitempty"          yaml:"password,omitempty"`
	TwoFactorTrustID  string `json:"twoFactorTrustId,omitempty"  yaml:"twoFactorTrustId,omitempty"`
}

// LoginResponse represents login responses; a 242 status carries a
// TwoFactorID instead of a token.
type LoginResponse struct {
	RefreshToken     string                 `json:"refreshToken,omitempty"     yaml:"refreshToken,omitempty"`
	State            map[string]interface{} `json:"state,omitempty"            yaml:"state,omitempty"`
	Token            string                 `json:"token,omitempty"            yaml:"token,omitempty"`
	TwoFactorID      string                 `json:"twoFactorId,omitempty"      yaml:"twoFactorId,omitempty"`
	TwoFactorTrustID string                 `json:"twoFactorTrustId,omitempty" yaml:"twoFactorTrustId,omitempty"`
	User             *User                  `json:"user,omitempty"             yaml:"user,omitempty"`
}

// PasswordlessStartRequest starts a passwordless login.
type PasswordlessStartRequest struct {
	ApplicationID string                 `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	LoginID       string                 `json:"loginId,omitempty"       yaml:"loginId,omitempty"`
	State         map[string]interface{} `json:"state,omitempty"         yaml:"state,omitempty"`
}

// PasswordlessStartResponse carries the one-time code for a passwordless login.
type PasswordlessStartResponse struct {
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
}

// PasswordlessLoginRequest completes a passwordless login.
type PasswordlessLoginRequest struct {
	Code             string `json:"code,omitempty"             yaml:"code,omitempty"`
	IPAddress        string `json:"ipAddress,omitempty"        yaml:"ipAddress,omitempty"`
	NoJWT            bool   `json:"noJWT,omitempty"            yaml:"noJWT,omitempty"`
	TwoFactorTrustID string `json:"twoFactorTrustId,omitempty" yaml:"twoFactorTrustId,omitempty"`
}

// TwoFactorLoginRequest completes a login that required a second factor.
type TwoFactorLoginRequest struct {
	ApplicationID string `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	Code          string `json:"code,omitempty"          yaml:"code,omitempty"`
	IPAddress     string `json:"ipAddress,omitempty"     yaml:"ipAddress,omitempty"`
	TrustComputer bool   `json:"trustComputer,omitempty" yaml:"trustComputer,omitempty"`
	TwoFactorID   string `json:"twoFactorId,omitempty"   yaml:"twoFactorId,omitempty"`
}

// TwoFactorRequest enables a two-factor method for a user.
type TwoFactorRequest struct {
	Code        string `json:"code,omitempty"        yaml:"code,omitempty"`
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"`
	Method      string `json:"method,omitempty"      yaml:"method,omitempty"`
	MobilePhone string `json:"mobilePhone,omitempty" yaml:"mobilePhone,omitempty"`
	Secret      string `json:"secret,omitempty"      yaml:"secret,omitempty"`
}

// TwoFactorResponse carries recovery codes after enabling a method.
type TwoFactorResponse struct {
	Code          string   `json:"code,omitempty"          yaml:"code,omitempty"`
	RecoveryCodes []string `json:"recoveryCodes,omitempty" yaml:"recoveryCodes,omitempty"`
}

// TwoFactorSendRequest sends a two-factor code out of band.
type TwoFactorSendRequest struct {
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"`
	Method      string `json:"method,omitempty"      yaml:"method,omitempty"`
	MethodID    string `json:"methodId,omitempty"    yaml:"methodId,omitempty"`
	MobilePhone string `json:"mobilePhone,omitempty" yaml:"mobilePhone,omitempty"`
	UserID      string `json:"userId,omitempty"      yaml:"userId,omitempty"`
}

// TwoFactorStartRequest starts a two-factor flow outside of login.
type TwoFactorStartRequest struct {
	ApplicationID  string                 `json:"applicationId,omitempty"  yaml:"applicationId,omitempty"`
	Code           string                 `json:"code,omitempty"           yaml:"code,omitempty"`
	LoginID        string                 `json:"loginId,omitempty"        yaml:"loginId,omitempty"`
	State          map[string]interface{} `json:"state,omitempty"          yaml:"state,omitempty"`
	TrustChallenge string                 `json:"trustChallenge,omitempty" yaml:"trustChallenge,omitempty"`
}

// TwoFactorMethod describes an enabled two-factor method.
type TwoFactorMethod struct {
	ID          string `json:"id,omitempty"          yaml:"id,omitempty"`
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"`
	Method      string `json:"method,omitempty"      yaml:"method,omitempty"`
	MobilePhone string `json:"mobilePhone,omitempty" yaml:"mobilePhone,omitempty"`
}

// TwoFactorStartResponse carries the state needed to complete a second factor.
type TwoFactorStartResponse struct {
	Code        string            `json:"code,omitempty"        yaml:"code,omitempty"`
	Methods     []TwoFactorMethod `json:"methods,omitempty"     yaml:"methods,omitempty"`
	TwoFactorID string            `json:"twoFactorId,omitempty" yaml:"twoFactorId,omitempty"`
}

// IssueResponse carries a newly issued JWT.
type IssueResponse struct {
	RefreshToken string `json:"refreshToken,omitempty" yaml:"refreshToken,omitempty"`
	Token        string `json:"token,omitempty"        yaml:"token,omitempty"`
}

// RefreshRequest exchanges a refresh token for a new JWT.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken,omitempty" yaml:"refreshToken,omitempty"`
	Token        string `json:"token,omitempty"        yaml:"token,omitempty"`
}

// RefreshResponse carries the reissued tokens.
type RefreshResponse struct {
	RefreshToken string `json:"refreshToken,omitempty" yaml:"refreshToken,omitempty"`
	Token        string `json:"token,omitempty"        yaml:"token,omitempty"`
}

// ValidateResponse carries the decoded claims of a valid JWT.
type ValidateResponse struct {
	JWT map[string]interface{} `json:"jwt,omitempty" yaml:"jwt,omitempty"`
}

// PublicKeyResponse carries PEM-encoded JWT signing public keys by key id.
type PublicKeyResponse struct {
	PublicKey  string            `json:"publicKey,omitempty"  yaml:"publicKey,omitempty"`
	PublicKeys map[string]string `json:"publicKeys,omitempty" yaml:"publicKeys,omitempty"`
}

// JSONWebKey represents one key of the JWKS document.
type JSONWebKey struct {
	Alg string   `json:"alg,omitempty" yaml:"alg,omitempty"`
	Crv string   `json:"crv,omitempty" yaml:"crv,omitempty"`
	E   string   `json:"e,omitempty"   yaml:"e,omitempty"`
	Kid string   `json:"kid,omitempty" yaml:"kid,omitempty"`
	Kty string   `json:"kty,omitempty" yaml:"kty,omitempty"`
	N   string   `json:"n,omitempty"   yaml:"n,omitempty"`
	Use string   `json:"use,omitempty" yaml:"use,omitempty"`
	X   string   `json:"x,omitempty"   yaml:"x,omitempty"`
	X5c []string `json:"x5c,omitempty" yaml:"x5c,omitempty"`
	Y   string   `json:"y,omitempty"   yaml:"y,omitempty"`
}

// JWKSResponse represents the /.well-known/jwks.json document.
type JWKSResponse struct {
	Keys []JSONWebKey `json:"keys,omitempty" yaml:"keys,omitempty"`
}

// RefreshToken represents a stored refresh token.
type RefreshToken struct {
	ID            string                 `json:"id,omitempty"            yaml:"id,omitempty"`
	ApplicationID string                 `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	InsertInstant int64                  `json:"insertInstant,omitempty" yaml:"insertInstant,omitempty"`
	MetaData      map[string]interface{} `json:"metaData,omitempty"      yaml:"metaData,omitempty"`
	StartInstant  int64                  `json:"startInstant,omitempty"  yaml:"startInstant,omitempty"`
	Token         string                 `json:"token,omitempty"         yaml:"token,omitempty"`
	UserID        string                 `json:"userId,omitempty"        yaml:"userId,omitempty"`
}

// RefreshTokenResponse represents refresh token retrievals.
type RefreshTokenResponse struct {
	RefreshToken  *RefreshToken  `json:"refreshToken,omitempty"  yaml:"refreshToken,omitempty"`
	RefreshTokens []RefreshToken `json:"refreshTokens,omitempty" yaml:"refreshTokens,omitempty"`
}

// AccessToken is the OAuth2 token endpoint response.
type AccessToken struct {
	AccessToken  string `json:"access_token,omitempty"  yaml:"access_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"    yaml:"expires_in,omitempty"`
	IDToken      string `json:"id_token,omitempty"      yaml:"id_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"         yaml:"scope,omitempty"`
	TokenType    string `json:"token_type,omitempty"    yaml:"token_type,omitempty"`
	UserID       string `json:"userId,omitempty"        yaml:"userId,omitempty"`
}

// IntrospectResponse is the claim set returned by /oauth2/introspect.
type IntrospectResponse map[string]interface{}

// Active reports the token's active claim.
func (r IntrospectResponse) Active() bool {
	active, _ := r["active"].(bool)

	return active
}

// UserInfoResponse is the claim set returned by /oauth2/userinfo.
type UserInfoResponse map[string]interface{}

// ChangePasswordRequest changes a user's password.
type ChangePasswordRequest struct {
	ApplicationID   string `json:"applicationId,omitempty"   yaml:"applicationId,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty" yaml:"currentPassword,omitempty"`
	LoginID         string `json:"loginId,omitempty"         yaml:"loginId,omitempty"`
	Password        string `json:"password,omitempty"        yaml:"password,omitempty"`
	RefreshToken    string `json:"refreshToken,omitempty"    yaml:"refreshToken,omitempty"`
}

// ChangePasswordResponse carries a one-time password for re-login flows.
type ChangePasswordResponse struct {
	OneTimePassword string                 `json:"oneTimePassword,omitempty" yaml:"oneTimePassword,omitempty"`
	State           map[string]interface{} `json:"state,omitempty"           yaml:"state,omitempty"`
}

// ForgotPasswordRequest starts the forgot-password workflow.
type ForgotPasswordRequest struct {
	ApplicationID string                 `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	Email         string                 `json:"email,omitempty"         yaml:"email,omitempty"`
	LoginID       string                 `json:"loginId,omitempty"       yaml:"loginId,omitempty"`
	// SendForgotPasswordEmail defaults to true server-side; false returns
	// the change password id to the caller instead.
	SendForgotPasswordEmail bool                   `json:"sendForgotPasswordEmail" yaml:"sendForgotPasswordEmail"`
	State                   map[string]interface{} `json:"state,omitempty"         yaml:"state,omitempty"`
	Username                string                 `json:"username,omitempty"      yaml:"username,omitempty"`
}

// ForgotPasswordResponse carries the change password id.
type ForgotPasswordResponse struct {
	ChangePasswordID string `json:"changePasswordId,omitempty" yaml:"changePasswordId,omitempty"`
}

// UserComment represents an administrative comment on a user.
type UserComment struct {
	ID            string `json:"id,omitempty"            yaml:"id,omitempty"`
	Comment       string `json:"comment,omitempty"       yaml:"comment,omitempty"`
	CommenterID   string `json:"commenterId,omitempty"   yaml:"commenterId,omitempty"`
	CreateInstant int64  `json:"createInstant,omitempty" yaml:"createInstant,omitempty"`
	UserID        string `json:"userId,omitempty"        yaml:"userId,omitempty"`
}

// UserCommentRequest represents a request to comment on a user.
type UserCommentRequest struct {
	UserComment *UserComment `json:"userComment,omitempty" yaml:"userComment,omitempty"`
}

// UserCommentResponse represents user comment responses.
type UserCommentResponse struct {
	UserComment  *UserComment  `json:"userComment,omitempty"  yaml:"userComment,omitempty"`
	UserComments []UserComment `json:"userComments,omitempty" yaml:"userComments,omitempty"`
}

// UserSearchCriteria drives a user search.
type UserSearchCriteria struct {
	AccurateTotal   bool     `json:"accurateTotal,omitempty"   yaml:"accurateTotal,omitempty"`
	IDs             []string `json:"ids,omitempty"             yaml:"ids,omitempty"`
	NumberOfResults int      `json:"numberOfResults,omitempty" yaml:"numberOfResults,omitempty"`
	Query           string   `json:"query,omitempty"           yaml:"query,omitempty"`
	QueryString     string   `json:"queryString,omitempty"     yaml:"queryString,omitempty"`
	SortFields      []Sort   `json:"sortFields,omitempty"      yaml:"sortFields,omitempty"`
	StartRow        int      `json:"startRow,omitempty"        yaml:"startRow,omitempty"`
}

// Sort orders search results by one field.
type Sort struct {
	Missing string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Name    string `json:"name,omitempty"    yaml:"name,omitempty"`
	Order   string `json:"order,omitempty"   yaml:"order,omitempty"`
}

// SearchRequest represents a user search request.
type SearchRequest struct {
	Search UserSearchCriteria `json:"search" yaml:"search"`
}

// SearchResponse represents a user search response.
type SearchResponse struct {
	Total int64  `json:"total,omitempty" yaml:"total,omitempty"`
	Users []User `json:"users,omitempty" yaml:"users,omitempty"`
}

// AuditLog represents one audit log entry.
type AuditLog struct {
	ID            int64                  `json:"id,omitempty"            yaml:"id,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"          yaml:"data,omitempty"`
	InsertInstant int64                  `json:"insertInstant,omitempty" yaml:"insertInstant,omitempty"`
	InsertUser    string                 `json:"insertUser,omitempty"    yaml:"insertUser,omitempty"`
	Message       string                 `json:"message,omitempty"       yaml:"message,omitempty"`
}

// AuditLogSearchCriteria drives an audit log search.
type AuditLogSearchCriteria struct {
	End             int64  `json:"end,omitempty"             yaml:"end,omitempty"`
	Message         string `json:"message,omitempty"         yaml:"message,omitempty"`
	NumberOfResults int    `json:"numberOfResults,omitempty" yaml:"numberOfResults,omitempty"`
	Start           int64  `json:"start,omitempty"           yaml:"start,omitempty"`
	StartRow        int    `json:"startRow,omitempty"        yaml:"startRow,omitempty"`
	User            string `json:"user,omitempty"            yaml:"user,omitempty"`
}

// AuditLogSearchRequest represents an audit log search request.
type AuditLogSearchRequest struct {
	Search AuditLogSearchCriteria `json:"search" yaml:"search"`
}

// AuditLogSearchResponse represents an audit log search response.
type AuditLogSearchResponse struct {
	AuditLogs []AuditLog `json:"auditLogs,omitempty" yaml:"auditLogs,omitempty"`
	Total     int64      `json:"total,omitempty"     yaml:"total,omitempty"`
}

// DisplayableRawLogin represents one login record.
type DisplayableRawLogin struct {
	ApplicationID string `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	Instant       int64  `json:"instant,omitempty"       yaml:"instant,omitempty"`
	IPAddress     string `json:"ipAddress,omitempty"     yaml:"ipAddress,omitempty"`
	LoginID       string `json:"loginId,omitempty"       yaml:"loginId,omitempty"`
	UserID        string `json:"userId,omitempty"        yaml:"userId,omitempty"`
}

// LoginRecordSearchCriteria drives a login record search.
type LoginRecordSearchCriteria struct {
	ApplicationID   string `json:"applicationId,omitempty"   yaml:"applicationId,omitempty"`
	End             int64  `json:"end,omitempty"             yaml:"end,omitempty"`
	NumberOfResults int    `json:"numberOfResults,omitempty" yaml:"numberOfResults,omitempty"`
	Start           int64  `json:"start,omitempty"           yaml:"start,omitempty"`
	StartRow        int    `json:"startRow,omitempty"        yaml:"startRow,omitempty"`
	UserID          string `json:"userId,omitempty"          yaml:"userId,omitempty"`
}

// LoginRecordSearchRequest represents a login record search request.
type LoginRecordSearchRequest struct {
	RetrieveTotal bool                      `json:"retrieveTotal,omitempty" yaml:"retrieveTotal,omitempty"`
	Search        LoginRecordSearchCriteria `json:"search"                  yaml:"search"`
}

// LoginRecordSearchResponse represents a login record search response.
type LoginRecordSearchResponse struct {
	Logins []DisplayableRawLogin `json:"logins,omitempty" yaml:"logins,omitempty"`
	Total  int64                 `json:"total,omitempty"  yaml:"total,omitempty"`
}

// WebAuthnCredential represents a registered WebAuthn passkey.
type WebAuthnCredential struct {
	ID              string   `json:"id,omitempty"              yaml:"id,omitempty"`
	Algorithm       int      `json:"algorithm,omitempty"       yaml:"algorithm,omitempty"`
	CredentialID    string   `json:"credentialId,omitempty"    yaml:"credentialId,omitempty"`
	DisplayName     string   `json:"displayName,omitempty"     yaml:"displayName,omitempty"`
	InsertInstant   int64    `json:"insertInstant,omitempty"   yaml:"insertInstant,omitempty"`
	Name            string   `json:"name,omitempty"            yaml:"name,omitempty"`
	PublicKey       string   `json:"publicKey,omitempty"       yaml:"publicKey,omitempty"`
	RelyingPartyID  string   `json:"relyingPartyId,omitempty"  yaml:"relyingPartyId,omitempty"`
	SignCount       int      `json:"signCount,omitempty"       yaml:"signCount,omitempty"`
	Transports      []string `json:"transports,omitempty"      yaml:"transports,omitempty"`
	UserAgent       string   `json:"userAgent,omitempty"       yaml:"userAgent,omitempty"`
	UserID          string   `json:"userId,omitempty"          yaml:"userId,omitempty"`
}

// WebAuthnRegisterStartRequest starts a credential registration ceremony.
type WebAuthnRegisterStartRequest struct {
	DisplayName string                 `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Name        string                 `json:"name,omitempty"        yaml:"name,omitempty"`
	State       map[string]interface{} `json:"state,omitempty"       yaml:"state,omitempty"`
	UserAgent   string                 `json:"userAgent,omitempty"   yaml:"userAgent,omitempty"`
	UserID      string                 `json:"userId,omitempty"      yaml:"userId,omitempty"`
	Workflow    string                 `json:"workflow,omitempty"    yaml:"workflow,omitempty"`
}

// WebAuthnRegisterStartResponse carries the browser-bound creation options.
// Options are passed through untyped; the browser API consumes them as-is.
type WebAuthnRegisterStartResponse struct {
	Options map[string]interface{} `json:"options,omitempty" yaml:"options,omitempty"`
}

// WebAuthnRegisterCompleteRequest completes a registration ceremony.
type WebAuthnRegisterCompleteRequest struct {
	Credential map[string]interface{} `json:"credential,omitempty" yaml:"credential,omitempty"`
	Origin     string                 `json:"origin,omitempty"     yaml:"origin,omitempty"`
	RpID       string                 `json:"rpId,omitempty"       yaml:"rpId,omitempty"`
	UserID     string                 `json:"userId,omitempty"     yaml:"userId,omitempty"`
}

// WebAuthnCredentialResponse represents credential retrievals.
type WebAuthnCredentialResponse struct {
	Credential  *WebAuthnCredential  `json:"credential,omitempty"  yaml:"credential,omitempty"`
	Credentials []WebAuthnCredential `json:"credentials,omitempty" yaml:"credentials,omitempty"`
}

// WebAuthnStartRequest starts an assertion (login) ceremony.
type WebAuthnStartRequest struct {
	ApplicationID string                 `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	CredentialID  string                 `json:"credentialId,omitempty"  yaml:"credentialId,omitempty"`
	LoginID       string                 `json:"loginId,omitempty"       yaml:"loginId,omitempty"`
	State         map[string]interface{} `json:"state,omitempty"         yaml:"state,omitempty"`
	UserID        string                 `json:"userId,omitempty"        yaml:"userId,omitempty"`
	Workflow      string                 `json:"workflow,omitempty"      yaml:"workflow,omitempty"`
}

// WebAuthnStartResponse carries the browser-bound request options.
type WebAuthnStartResponse struct {
	Options map[string]interface{} `json:"options,omitempty" yaml:"options,omitempty"`
}

// WebAuthnLoginRequest completes an assertion ceremony as a login.
type WebAuthnLoginRequest struct {
	ApplicationID string                 `json:"applicationId,omitempty" yaml:"applicationId,omitempty"`
	Credential    map[string]interface{} `json:"credential,omitempty"    yaml:"credential,omitempty"`
	IPAddress     string                 `json:"ipAddress,omitempty"     yaml:"ipAddress,omitempty"`
	Origin        string                 `json:"origin,omitempty"        yaml:"origin,omitempty"`
	RpID          string                 `json:"rpId,omitempty"          yaml:"rpId,omitempty"`
}

// StatusResponse is the raw /api/status document.
type StatusResponse map[string]interface{}

// VersionResponse represents the system version.
type VersionResponse struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}
