package notification

import "html/template"

const layoutStart = `<!DOCTYPE html><html><body style="font-family:Arial,sans-serif;color:#222">`
const layoutEnd = `<p style="color:#888;font-size:12px">go-crm</p></body></html>`

var (
	verificationTmpl = template.Must(template.New("verification").Parse(layoutStart + `
<h2>Hello {{.Name}},</h2>
<p>Please confirm your email address to activate your account.</p>
<p><a href="{{.Link}}">Verify email</a></p>
<p>The link expires in one hour.</p>` + layoutEnd))

	inviteNewUserTmpl = template.Must(template.New("invite_new_user").Parse(layoutStart + `
<h2>Welcome {{.Name}},</h2>
<p>You have been invited to <strong>{{.OrganizationName}}</strong>.</p>
<p>Sign in with <strong>{{.Email}}</strong> and this temporary password:</p>
<p style="font-family:monospace;font-size:16px">{{.Password}}</p>
<p>Change it after your first login.</p>
<p><a href="{{.LoginURL}}">Sign in</a></p>` + layoutEnd))

	inviteExistingUserTmpl = template.Must(template.New("invite_existing_user").Parse(layoutStart + `
<h2>Hello {{.Name}},</h2>
<p>You now have access to <strong>{{.OrganizationName}}</strong>. Use your existing credentials to sign in.</p>
<p><a href="{{.LoginURL}}">Sign in</a></p>` + layoutEnd))

	passwordResetTmpl = template.Must(template.New("password_reset").Parse(layoutStart + `
<h2>Hello {{.Name}},</h2>
<p>We received a request to reset your password.</p>
<p><a href="{{.Link}}">Reset password</a></p>
<p>If you did not ask for this you can ignore this email. The link expires in one hour.</p>` + layoutEnd))

	saleRecordedTmpl = template.Must(template.New("sale_recorded").Parse(layoutStart + `
<h2>New sale in {{.OrganizationName}}</h2>
<table>
<tr><td>Sale</td><td>{{.SaleNumber}}</td></tr>
<tr><td>Lead</td><td>{{.LeadName}}</td></tr>
<tr><td>Product</td><td>{{.ProductName}}</td></tr>
<tr><td>Quantity</td><td>{{.Quantity}}</td></tr>
<tr><td>Total</td><td>{{.TotalPrice}}</td></tr>
</table>` + layoutEnd))
)
