package mailer

import "fmt"

// Message bodies for the account lifecycle mails. Kept as plain
// functions so any Sender implementation can deliver them.

func VerificationMessage(code string) (subject, body string) {
	subject = "Verify your email - VibeGuard"
	body = fmt.Sprintf(`Your VibeGuard verification code is: %s

Enter this code to finish creating your account. The code expires shortly.

Best regards,
VibeGuard Team`, code)
	return subject, body
}

func PasswordResetOTPMessage(otp string) (subject, body string) {
	subject = "Password Reset Code - VibeGuard"
	body = fmt.Sprintf(`Your VibeGuard password reset code is: %s

If you did not request a password reset, you can ignore this message.

Best regards,
VibeGuard Team`, otp)
	return subject, body
}

func PasswordResetConfirmationMessage() (subject, body string) {
	subject = "Password Changed - VibeGuard"
	body = `Your VibeGuard password was changed successfully.

If this wasn't you, contact support immediately.

Best regards,
VibeGuard Team`
	return subject, body
}

func SuspensionMessage(username string) (subject, body string) {
	if username == "" {
		username = "User"
	}
	subject = "Account Suspended - VibeGuard"
	body = fmt.Sprintf(`Dear %s,

Your account has been suspended due to inactivity for more than 5 months.

If you believe this is a mistake or want to reactivate your account, please contact support.

Best regards,
VibeGuard Team`, username)
	return subject, body
}

func UnsuspensionMessage(username string) (subject, body string) {
	if username == "" {
		username = "User"
	}
	subject = "Account Reactivated - VibeGuard"
	body = fmt.Sprintf(`Dear %s,

Your account has been reactivated. You can now access all features.

Welcome back!

Best regards,
VibeGuard Team`, username)
	return subject, body
}
