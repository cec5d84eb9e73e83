package notification

// Email bodies. Placeholders are substituted with strings.Replace at send
// time, keeping the templates copy-editable without code changes.

const verificationEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h1 style="color: #ea580c;">Verify your email</h1>
  <p>Thanks for signing up for BookIt! Your verification code is:</p>
  <p style="font-size: 32px; font-weight: bold; letter-spacing: 6px; color: #ea580c;">{verificationCode}</p>
  <p>Enter this code on the verification page to complete your registration.</p>
  <p>This code expires in 24 hours.</p>
  <p>If you didn't create an account with us, please ignore this email.</p>
</body>
</html>`

const passwordResetRequestTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h1 style="color: #ea580c;">Reset your password</h1>
  <p>We received a request to reset your password. Click the button below to proceed:</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="{resetURL}" style="background-color: #f97316; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold;">Reset Password</a>
  </p>
  <p>This link expires in 1 hour.</p>
  <p>If you didn't request a password reset, please ignore this email.</p>
</body>
</html>`

const passwordResetSuccessTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h1 style="color: #ea580c;">Password Reset Successful</h1>
  <p>Your password has been successfully reset.</p>
  <p>If you did not perform this action, please contact support immediately.</p>
</body>
</html>`

const welcomeTemplate = `<p>Hi {name},</p><p>Welcome to BookIt!</p>`
