package service

const defaultConfirmationSubject = "Congratulations! You've been shortlisted for {{eventName}}"

const defaultInvitationHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .button { display: inline-block; background: #667eea; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; margin: 10px 5px; }
    .details { background: white; padding: 20px; border-left: 4px solid #667eea; margin: 20px 0; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>You're Invited!</h1>
    </div>
    <div class="content">
      <p>Dear <strong>{{name}}</strong>,</p>
      <p>We are excited to invite you to <strong>{{eventName}}</strong>!</p>
      <div class="details">
        <p><strong>Date:</strong> {{date}}</p>
        <p><strong>Time:</strong> {{time}}</p>
        <p><strong>Venue:</strong> {{venue}}</p>
      </div>
      <p>Please confirm your attendance by clicking the check-in button below:</p>
      <div style="text-align: center;">
        <a href="{{checkinLink}}" class="button">Check In</a>
        <a href="{{calendarLink}}" class="button">Add to Calendar</a>
      </div>
      <div style="text-align: center; margin: 30px 0;">
        {{qr}}
        <p style="color: #666; font-size: 12px; margin-top: 10px;">Scan this QR code at the event for quick check-in</p>
      </div>
      <p>We look forward to seeing you there!</p>
      <p>Best regards,<br>The Event Team</p>
    </div>
    <div class="footer">
      <p>This is an automated email from Back To Base Event Platform</p>
    </div>
  </div>
</body>
</html>`

const defaultConfirmationHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #11998e 0%, #38ef7d 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .badge { display: inline-block; background: #38ef7d; color: white; padding: 10px 20px; border-radius: 20px; font-weight: bold; }
    .details { background: white; padding: 20px; border-left: 4px solid #38ef7d; margin: 20px 0; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Congratulations!</h1>
    </div>
    <div class="content">
      <p>Dear <strong>{{name}}</strong>,</p>
      <p>We are delighted to inform you that you have been <span class="badge">SHORTLISTED</span> for <strong>{{eventName}}</strong>!</p>
      <div class="details">
        <p><strong>Date:</strong> {{date}}</p>
        <p><strong>Time:</strong> {{time}}</p>
        <p><strong>Venue:</strong> {{venue}}</p>
      </div>
      <p>Please make sure to arrive on time. We're excited to have you join us!</p>
      <div style="text-align: center; margin: 30px 0;">
        {{qr}}
        <p style="color: #666; font-size: 12px; margin-top: 10px;">Your personal QR code for event entry</p>
      </div>
      <p>For any queries, please feel free to reach out to us.</p>
      <p>Best regards,<br>The Event Team</p>
    </div>
    <div class="footer">
      <p>This is an automated email from Back To Base Event Platform</p>
    </div>
  </div>
</body>
</html>`
