package i18n

// Message keys. The English text doubles as the key so an unknown
// language still renders something readable.
const (
	MsgInvalidCredentials = "Invalid email or password."
	MsgSignInRequired     = "Please sign in to continue."
	MsgSuspended          = "Your account has been suspended. Contact an administrator."
	MsgForbidden          = "You do not have permission to do that."
	MsgNotFound           = "The requested item was not found."
	MsgConflict           = "That conflicts with an existing item."
	MsgAlreadyExists      = "That item already exists."
	MsgValidation         = "Some fields are invalid."
	MsgInternal           = "Something went wrong. Please try again."
	MsgUnavailable        = "The service is temporarily unavailable. Please try again."
	MsgLoading            = "Checking your session. Please wait."
	MsgStorageMissing     = "File storage is not configured. Contact an administrator."
	MsgFileType           = "Unsupported file type %s."
	MsgFileTooLarge       = "File is too large. The limit is %d MB."
	MsgBookingOverlap     = "The room is already booked for that time."
	MsgBookingPast        = "Bookings must start in the future."
	MsgBookingTooLong     = "A booking may last at most %d hours."
	MsgInsufficientPoints = "Not enough points or the reward is out of stock."
	MsgSelfDemotion       = "You cannot remove your own admin role or suspend yourself."
	MsgSignedOut          = "You have been signed out."
	MsgSaved              = "Saved."
)

var koKR = map[string]string{
	MsgInvalidCredentials: "이메일 또는 비밀번호가 올바르지 않습니다.",
	MsgSignInRequired:     "계속하려면 로그인하세요.",
	MsgSuspended:          "계정이 정지되었습니다. 관리자에게 문의하세요.",
	MsgForbidden:          "권한이 없습니다.",
	MsgNotFound:           "요청한 항목을 찾을 수 없습니다.",
	MsgConflict:           "기존 항목과 충돌합니다.",
	MsgAlreadyExists:      "이미 존재하는 항목입니다.",
	MsgValidation:         "입력값을 확인해 주세요.",
	MsgInternal:           "문제가 발생했습니다. 다시 시도해 주세요.",
	MsgUnavailable:        "일시적으로 서비스를 사용할 수 없습니다. 다시 시도해 주세요.",
	MsgLoading:            "세션을 확인하는 중입니다. 잠시만 기다려 주세요.",
	MsgStorageMissing:     "파일 저장소가 설정되지 않았습니다. 관리자에게 문의하세요.",
	MsgFileType:           "지원하지 않는 파일 형식입니다: %s",
	MsgFileTooLarge:       "파일이 너무 큽니다. 최대 %dMB까지 업로드할 수 있습니다.",
	MsgBookingOverlap:     "해당 시간에 이미 예약된 공간입니다.",
	MsgBookingPast:        "예약 시작 시간은 현재 이후여야 합니다.",
	MsgBookingTooLong:     "예약은 최대 %d시간까지 가능합니다.",
	MsgInsufficientPoints: "포인트가 부족하거나 보상 재고가 없습니다.",
	MsgSelfDemotion:       "자신의 관리자 권한을 해제하거나 계정을 정지할 수 없습니다.",
	MsgSignedOut:          "로그아웃되었습니다.",
	MsgSaved:              "저장되었습니다.",
}
